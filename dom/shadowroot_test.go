package dom

import (
	"strings"
	"testing"

	"github.com/openshade/shadowstyle/css"
)

func newTestShadowRoot(t *testing.T) *ShadowRoot {
	t.Helper()
	doc := NewDocument()
	host := doc.CreateElement("div")
	sr, err := host.AttachShadow(ShadowRootModeOpen)
	if err != nil {
		t.Fatalf("attachShadow failed: %v", err)
	}
	return sr
}

func TestAttachShadow(t *testing.T) {
	doc := NewDocument()
	host := doc.CreateElement("div")

	sr, err := host.AttachShadow(ShadowRootModeOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.Host() != host {
		t.Error("expected shadow root host to be the element")
	}
	if sr.Mode() != ShadowRootModeOpen {
		t.Errorf("expected open mode, got %q", sr.Mode())
	}
	if sr.NodeType() != DocumentFragmentNode {
		t.Errorf("expected DocumentFragmentNode, got %v", sr.NodeType())
	}
	if host.ShadowRoot() != sr {
		t.Error("expected Element.ShadowRoot to return the attached root")
	}

	if _, err := host.AttachShadow(ShadowRootModeOpen); err == nil {
		t.Error("expected error attaching a second shadow root")
	}
}

func TestAttachShadowInvalidHost(t *testing.T) {
	doc := NewDocument()

	if _, err := doc.CreateElement("img").AttachShadow(ShadowRootModeOpen); err == nil {
		t.Error("expected error for img host")
	}
	if _, err := doc.CreateElement("my-widget").AttachShadow(ShadowRootModeOpen); err != nil {
		t.Errorf("expected custom element to be a valid host, got %v", err)
	}
}

func TestClosedShadowRootIsHidden(t *testing.T) {
	doc := NewDocument()
	host := doc.CreateElement("div")

	sr, err := host.AttachShadow(ShadowRootModeClosed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr == nil {
		t.Fatal("expected non-nil shadow root from AttachShadow")
	}
	if host.ShadowRoot() != nil {
		t.Error("expected Element.ShadowRoot to hide a closed root")
	}
}

func TestAdoptedStyleSheets(t *testing.T) {
	sr := newTestShadowRoot(t)

	if len(sr.AdoptedStyleSheets()) != 0 {
		t.Fatal("expected empty adopted list initially")
	}

	a := css.NewStyleSheet()
	b := css.NewStyleSheet()
	if err := sr.SetAdoptedStyleSheetsWithError([]*css.CSSStyleSheet{a, b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sr.AdoptedStyleSheets()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatal("unexpected adopted list contents")
	}

	// Assignment replaces, not appends.
	sr.SetAdoptedStyleSheets([]*css.CSSStyleSheet{b})
	got = sr.AdoptedStyleSheets()
	if len(got) != 1 || got[0] != b {
		t.Fatal("expected full replacement of adopted list")
	}
}

func TestAdoptedStyleSheetsRejectsNonConstructed(t *testing.T) {
	sr := newTestShadowRoot(t)

	parsed := css.Parse("div { color: red; }")
	err := sr.SetAdoptedStyleSheetsWithError([]*css.CSSStyleSheet{parsed})
	if err == nil {
		t.Fatal("expected NotAllowedError for non-constructed sheet")
	}
	if !strings.Contains(err.Error(), "NotAllowedError") {
		t.Errorf("expected NotAllowedError, got %v", err)
	}
}

func TestShadowRootInnerHTML(t *testing.T) {
	sr := newTestShadowRoot(t)

	if err := sr.SetInnerHTML(`<p class="x">hi</p><!--m-->`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := sr.InnerHTML()
	want := `<p class="x">hi</p><!--m-->`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if err := sr.SetInnerHTML(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.AsNode().HasChildNodes() {
		t.Error("expected no children after clearing innerHTML")
	}
}

func TestShadowRootAppend(t *testing.T) {
	sr := newTestShadowRoot(t)
	doc := sr.OwnerDocument()

	sr.Append(doc.CreateElement("span"), "text")

	children := sr.AsNode().ChildNodes()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].NodeName() != "span" {
		t.Errorf("expected first child 'span', got %q", children[0].NodeName())
	}
	if children[1].NodeValue() != "text" {
		t.Errorf("expected text child, got %q", children[1].NodeValue())
	}
}
