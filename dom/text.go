package dom

// Text represents a text node in the DOM.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData sets the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content in bytes.
func (t *Text) Length() int {
	return len(t.Data())
}
