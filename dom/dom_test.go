package dom

import (
	"strings"
	"testing"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()

	el := doc.CreateElement("DIV")
	if el == nil {
		t.Fatal("expected non-nil element")
	}
	if el.TagName() != "DIV" {
		t.Errorf("expected tagName 'DIV', got %q", el.TagName())
	}
	if el.LocalName() != "div" {
		t.Errorf("expected localName 'div', got %q", el.LocalName())
	}
	if el.AsNode().NodeType() != ElementNode {
		t.Errorf("expected ElementNode, got %v", el.AsNode().NodeType())
	}

	if _, err := doc.CreateElementWithError(""); err == nil {
		t.Error("expected InvalidCharacterError for empty tag name")
	}
	if _, err := doc.CreateElementWithError("1div"); err == nil {
		t.Error("expected InvalidCharacterError for tag name starting with a digit")
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateElement("span").AsNode()
	b := doc.CreateTextNode("hello")

	parent.AppendChild(a)
	parent.AppendChild(b)

	if parent.FirstChild() != a || parent.LastChild() != b {
		t.Fatal("unexpected child links after append")
	}
	if a.NextSibling() != b || b.PreviousSibling() != a {
		t.Fatal("unexpected sibling links after append")
	}
	if a.ParentNode() != parent {
		t.Error("expected parentNode to be set")
	}

	parent.RemoveChild(a)
	if parent.FirstChild() != b || b.PreviousSibling() != nil {
		t.Fatal("unexpected links after remove")
	}
	if a.ParentNode() != nil {
		t.Error("expected removed node to have nil parent")
	}

	if _, err := parent.RemoveChildWithError(a); err == nil {
		t.Error("expected NotFoundError removing a non-child")
	}
}

func TestInsertBefore(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateTextNode("a")
	c := doc.CreateTextNode("c")
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := doc.CreateTextNode("b")
	parent.InsertBefore(b, c)

	if got := parent.TextContent(); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}

	// Inserting before a non-child fails.
	stranger := doc.CreateTextNode("x")
	other := doc.CreateElement("div").AsNode()
	if _, err := parent.InsertBeforeWithError(stranger, other); err == nil {
		t.Error("expected NotFoundError for non-child reference")
	}

	// A node cannot be inserted into its own subtree.
	if _, err := a.InsertBeforeWithError(parent, nil); err == nil {
		t.Error("expected HierarchyRequestError for cycle")
	}
}

func TestInsertMovesNodeBetweenParents(t *testing.T) {
	doc := NewDocument()
	p1 := doc.CreateElement("div").AsNode()
	p2 := doc.CreateElement("div").AsNode()
	child := doc.CreateTextNode("x")

	p1.AppendChild(child)
	p2.AppendChild(child)

	if p1.HasChildNodes() {
		t.Error("expected node to be removed from first parent")
	}
	if child.ParentNode() != p2 {
		t.Error("expected node to be owned by second parent")
	}
}

func TestDocumentFragmentSplices(t *testing.T) {
	doc := NewDocument()
	frag := doc.CreateDocumentFragment()
	frag.AsNode().AppendChild(doc.CreateTextNode("a"))
	frag.AsNode().AppendChild(doc.CreateTextNode("b"))

	parent := doc.CreateElement("div").AsNode()
	parent.AppendChild(frag.AsNode())

	if got := parent.TextContent(); got != "ab" {
		t.Errorf("expected 'ab', got %q", got)
	}
	if frag.AsNode().HasChildNodes() {
		t.Error("expected fragment to be empty after insertion")
	}
}

func TestCharacterDataViews(t *testing.T) {
	doc := NewDocument()

	text := doc.CreateTextNode("hello").AsText()
	if text == nil {
		t.Fatal("expected AsText to succeed on a text node")
	}
	if text.Data() != "hello" || text.Length() != 5 {
		t.Errorf("unexpected text data %q (length %d)", text.Data(), text.Length())
	}
	text.SetData("bye")
	if text.AsNode().NodeValue() != "bye" {
		t.Errorf("expected nodeValue 'bye', got %q", text.AsNode().NodeValue())
	}

	comment := doc.CreateComment("note").AsComment()
	if comment == nil {
		t.Fatal("expected AsComment to succeed on a comment node")
	}
	if comment.Data() != "note" {
		t.Errorf("expected comment data 'note', got %q", comment.Data())
	}
	if comment.AsNode().AsText() != nil {
		t.Error("expected AsText to return nil for a comment node")
	}
}

func TestSetTextContent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div").AsNode()
	el.AppendChild(doc.CreateElement("span").AsNode())
	el.SetTextContent("plain")

	if got := el.TextContent(); got != "plain" {
		t.Errorf("expected 'plain', got %q", got)
	}
	if el.FirstChild() == nil || el.FirstChild().NodeType() != TextNode {
		t.Error("expected a single text child")
	}
	if el.FirstChild() != el.LastChild() {
		t.Error("expected exactly one child")
	}
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("style")

	if el.HasAttribute("nonce") {
		t.Error("expected no nonce attribute initially")
	}
	el.SetAttribute("nonce", "abc123")
	if !el.HasAttribute("nonce") {
		t.Error("expected nonce attribute after SetAttribute")
	}
	if got := el.GetAttribute("nonce"); got != "abc123" {
		t.Errorf("expected 'abc123', got %q", got)
	}

	el.SetAttribute("NONCE", "def")
	if got := el.GetAttribute("nonce"); got != "def" {
		t.Errorf("expected case-insensitive replace, got %q", got)
	}
	if len(el.Attributes()) != 1 {
		t.Errorf("expected 1 attribute, got %d", len(el.Attributes()))
	}

	el.RemoveAttribute("nonce")
	if el.HasAttribute("nonce") {
		t.Error("expected nonce attribute to be removed")
	}
}

func TestSerializeElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "box")
	el.AppendChild(doc.CreateTextNode("a < b"))
	el.AppendChild(doc.CreateComment("note"))

	got := el.OuterHTML()
	want := `<div class="box">a &lt; b<!--note--></div>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSerializeStyleIsRawText(t *testing.T) {
	doc := NewDocument()
	style := doc.CreateElement("style")
	style.AppendChild(doc.CreateTextNode("div > p { color: red; }"))

	got := style.OuterHTML()
	if !strings.Contains(got, "div > p { color: red; }") {
		t.Errorf("expected unescaped style content, got %q", got)
	}
}
