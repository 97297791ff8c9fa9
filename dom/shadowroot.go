package dom

import (
	"strings"

	"github.com/openshade/shadowstyle/css"
)

// ShadowRootMode indicates whether the shadow root is open or closed.
type ShadowRootMode string

const (
	// ShadowRootModeOpen means the shadow root is reachable through
	// Element.ShadowRoot.
	ShadowRootModeOpen ShadowRootMode = "open"
	// ShadowRootModeClosed means Element.ShadowRoot returns nil.
	ShadowRootModeClosed ShadowRootMode = "closed"
)

// ShadowRoot is the root of a shadow tree: a DocumentFragment-like node that
// encapsulates a DOM subtree with its own style scope. Styles reach a shadow
// tree either through its adopted-stylesheet list or through <style> elements
// inside the tree; adopted sheets take precedence over in-tree styles.
type ShadowRoot struct {
	node *Node // underlying node (uses DocumentFragmentNode type)
	mode ShadowRootMode
	host *Element

	adoptedSheets []*css.CSSStyleSheet
}

func newShadowRoot(host *Element, mode ShadowRootMode) *ShadowRoot {
	node := newNode(DocumentFragmentNode, "#document-fragment", host.AsNode().ownerDoc)
	sr := &ShadowRoot{
		node: node,
		mode: mode,
		host: host,
	}
	node.shadowRoot = sr
	return sr
}

// AsNode returns the underlying Node.
func (sr *ShadowRoot) AsNode() *Node {
	return sr.node
}

// NodeType returns DocumentFragmentNode (11). Per spec, a shadow root is a
// document fragment.
func (sr *ShadowRoot) NodeType() NodeType {
	return DocumentFragmentNode
}

// NodeName returns "#document-fragment".
func (sr *ShadowRoot) NodeName() string {
	return "#document-fragment"
}

// Mode returns the mode of this shadow root ("open" or "closed").
func (sr *ShadowRoot) Mode() ShadowRootMode {
	return sr.mode
}

// Host returns the element that hosts this shadow root.
func (sr *ShadowRoot) Host() *Element {
	return sr.host
}

// OwnerDocument returns the owner document. Per spec, this is the host
// element's node document.
func (sr *ShadowRoot) OwnerDocument() *Document {
	return sr.node.ownerDoc
}

// AdoptedStyleSheets returns the ordered list of constructed stylesheets
// adopted by this shadow root.
func (sr *ShadowRoot) AdoptedStyleSheets() []*css.CSSStyleSheet {
	return sr.adoptedSheets
}

// SetAdoptedStyleSheets replaces the adopted-stylesheet list. For
// error-returning version, use SetAdoptedStyleSheetsWithError.
func (sr *ShadowRoot) SetAdoptedStyleSheets(sheets []*css.CSSStyleSheet) {
	_ = sr.SetAdoptedStyleSheetsWithError(sheets)
}

// SetAdoptedStyleSheetsWithError replaces the adopted-stylesheet list.
// Returns a NotAllowedError if any sheet was not created through
// css.NewStyleSheet; a sheet that belongs to a <style> element cannot be
// adopted.
func (sr *ShadowRoot) SetAdoptedStyleSheetsWithError(sheets []*css.CSSStyleSheet) error {
	for _, sheet := range sheets {
		if sheet == nil || !sheet.Constructed() {
			return ErrNotAllowed("only constructed stylesheets can be adopted")
		}
	}
	sr.adoptedSheets = append([]*css.CSSStyleSheet(nil), sheets...)
	return nil
}

// Append appends nodes or strings to this shadow root.
func (sr *ShadowRoot) Append(items ...interface{}) {
	for _, item := range items {
		switch v := item.(type) {
		case *Node:
			sr.node.AppendChild(v)
		case *Element:
			sr.node.AppendChild(v.AsNode())
		case string:
			sr.node.AppendChild(sr.node.ownerDoc.CreateTextNode(v))
		}
	}
}

// InnerHTML returns the serialized HTML content inside the shadow root.
func (sr *ShadowRoot) InnerHTML() string {
	if sr.node.firstChild == nil {
		return ""
	}
	var sb strings.Builder
	for child := sr.node.firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}

// SetInnerHTML replaces the shadow root's content with nodes parsed from the
// given HTML markup.
func (sr *ShadowRoot) SetInnerHTML(markup string) error {
	for sr.node.firstChild != nil {
		sr.node.RemoveChild(sr.node.firstChild)
	}
	if markup == "" {
		return nil
	}

	nodes, err := parseHTMLFragment(sr.node.ownerDoc, markup, sr.host)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		sr.node.AppendChild(node)
	}
	return nil
}
