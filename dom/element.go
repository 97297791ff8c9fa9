package dom

import "strings"

// Element represents an element node in the DOM tree.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the element's tag name in uppercase, as HTML elements
// report it.
func (e *Element) TagName() string {
	return strings.ToUpper(e.AsNode().nodeName)
}

// LocalName returns the element's lowercase local name.
func (e *Element) LocalName() string {
	return e.AsNode().nodeName
}

// Id returns the value of the element's id attribute.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// GetAttribute returns the value of the named attribute, or "" if absent.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.AsNode().attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.AsNode().attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets the named attribute, replacing any previous value.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	node := e.AsNode()
	for i, a := range node.attrs {
		if a.Name == name {
			node.attrs[i].Value = value
			return
		}
	}
	node.attrs = append(node.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	node := e.AsNode()
	for i, a := range node.attrs {
		if a.Name == name {
			node.attrs = append(node.attrs[:i], node.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the element's attributes in set order.
func (e *Element) Attributes() []Attr {
	return append([]Attr(nil), e.AsNode().attrs...)
}

// AppendChild adds a node to the end of this element's children.
func (e *Element) AppendChild(child *Node) *Node {
	return e.AsNode().AppendChild(child)
}

// AttachShadow attaches a shadow DOM tree to this element and returns the
// ShadowRoot. Returns an error if the element is not a valid shadow host or
// already hosts a shadow tree.
func (e *Element) AttachShadow(mode ShadowRootMode) (*ShadowRoot, error) {
	if !e.canAttachShadow() {
		return nil, ErrNotSupported("this element does not support attachShadow")
	}
	if e.AsNode().shadowRoot != nil {
		return nil, ErrNotSupported("shadow root cannot be created on a host which already hosts a shadow tree")
	}
	if mode != ShadowRootModeOpen && mode != ShadowRootModeClosed {
		return nil, ErrNotSupported("'" + string(mode) + "' is not a valid shadow root mode")
	}

	sr := newShadowRoot(e, mode)
	e.AsNode().shadowRoot = sr
	return sr, nil
}

// ShadowRoot returns the element's attached shadow root, or nil if there is
// none or its mode is closed.
func (e *Element) ShadowRoot() *ShadowRoot {
	sr := e.AsNode().shadowRoot
	if sr == nil || sr.mode == ShadowRootModeClosed {
		return nil
	}
	return sr
}

// canAttachShadow returns true if this element can have a shadow root
// attached: custom elements (names containing a hyphen) and the set of
// built-in elements the HTML spec allows as shadow hosts.
func (e *Element) canAttachShadow() bool {
	name := e.LocalName()
	if strings.Contains(name, "-") {
		return true
	}
	switch name {
	case "article", "aside", "blockquote", "body", "div", "footer",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"header", "main", "nav", "p", "section", "span":
		return true
	}
	return false
}
