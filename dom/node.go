// Package dom implements the minimal DOM tree needed to host shadow roots
// and apply styles to them: elements, character data, document fragments and
// shadow roots with adopted-stylesheet lists.
package dom

import "strings"

// Node is the base type for everything in the tree. Element, Document and
// the other node kinds are views over a Node.
type Node struct {
	nodeType  NodeType
	nodeName  string
	nodeValue string // character data for text and comment nodes
	attrs     []Attr // element attributes, in set order

	ownerDoc    *Document
	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// shadowRoot is set on a host element (the attached root) and on the
	// fragment node backing a shadow root (back-reference).
	shadowRoot *ShadowRoot
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of this node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of this node ("#text", "#comment", the element's
// local name, and so on).
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the character data of a text or comment node, or "" for
// other node types.
func (n *Node) NodeValue() string {
	return n.nodeValue
}

// SetNodeValue replaces the character data of a text or comment node. It is a
// no-op for other node types.
func (n *Node) SetNodeValue(value string) {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		n.nodeValue = value
	}
}

// OwnerDocument returns the document this node belongs to, or nil for a
// document node itself.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent of this node.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// AsElement returns this node as an *Element, or nil if it is not an
// element node.
func (n *Node) AsElement() *Element {
	if n.nodeType == ElementNode {
		return (*Element)(n)
	}
	return nil
}

// AsText returns this node as a *Text, or nil if it is not a text node.
func (n *Node) AsText() *Text {
	if n.nodeType == TextNode {
		return (*Text)(n)
	}
	return nil
}

// AsComment returns this node as a *Comment, or nil if it is not a
// comment node.
func (n *Node) AsComment() *Comment {
	if n.nodeType == CommentNode {
		return (*Comment)(n)
	}
	return nil
}

// ParentElement returns the parent if it is an element, else nil.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// FirstChild returns the first child of this node.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child of this node.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the node immediately preceding this one.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the node immediately following this one.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes reports whether this node has any children.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildNodes returns the children of this node as a slice, in tree order.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for child := n.firstChild; child != nil; child = child.nextSibling {
		children = append(children, child)
	}
	return children
}

// Contains reports whether other is an inclusive descendant of this node.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated data of all text node descendants.
func (n *Node) TextContent() string {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		return n.nodeValue
	}
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == TextNode {
			sb.WriteString(child.nodeValue)
		} else {
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent replaces all children with a single text node holding the
// given value (or no children when value is empty).
func (n *Node) SetTextContent(value string) {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		n.nodeValue = value
		return
	}
	for n.firstChild != nil {
		n.RemoveChild(n.firstChild)
	}
	if value != "" && n.ownerDoc != nil {
		n.AppendChild(n.ownerDoc.CreateTextNode(value))
	}
}

// AppendChild adds a node to the end of the list of children of this node.
// For error-returning version, use AppendChildWithError.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError adds a node to the end of the list of children of this
// node. Returns an error if the operation violates DOM hierarchy constraints.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts a node before a reference child node. If refChild is
// nil, the node is appended to the end. For error-returning version, use
// InsertBeforeWithError.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts a node before a reference child node. If
// refChild is nil, the node is appended to the end. Returns an error if the
// operation violates DOM hierarchy constraints.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if err := n.validatePreInsertion(newChild, refChild); err != nil {
		return nil, err
	}

	// A document fragment is spliced in: its children move, it stays empty.
	if newChild.nodeType == DocumentFragmentNode {
		for newChild.firstChild != nil {
			moved := newChild.firstChild
			newChild.removeChildInternal(moved)
			n.insertBeforeInternal(moved, refChild)
		}
		return newChild, nil
	}

	if newChild.parentNode != nil {
		newChild.parentNode.removeChildInternal(newChild)
	}
	n.insertBeforeInternal(newChild, refChild)
	return newChild, nil
}

func (n *Node) validatePreInsertion(node, child *Node) error {
	if node == nil {
		return ErrHierarchyRequest("the node to be inserted is nil")
	}
	switch n.nodeType {
	case ElementNode, DocumentFragmentNode, DocumentNode:
	default:
		return ErrHierarchyRequest("this node type cannot have children")
	}
	switch node.nodeType {
	case ElementNode, TextNode, CommentNode, DocumentFragmentNode:
	default:
		return ErrHierarchyRequest("this node type cannot be inserted")
	}
	if node.Contains(n) {
		return ErrHierarchyRequest("the new child contains the parent")
	}
	if child != nil && child.parentNode != n {
		return ErrNotFound("the node before which the new node is to be inserted is not a child of this node")
	}
	return nil
}

func (n *Node) insertBeforeInternal(newChild, refChild *Node) {
	newChild.parentNode = n
	if n.ownerDoc != nil {
		newChild.adopt(n.ownerDoc)
	}
	if refChild == nil {
		newChild.prevSibling = n.lastChild
		newChild.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		n.lastChild = newChild
		return
	}
	newChild.prevSibling = refChild.prevSibling
	newChild.nextSibling = refChild
	if refChild.prevSibling != nil {
		refChild.prevSibling.nextSibling = newChild
	} else {
		n.firstChild = newChild
	}
	refChild.prevSibling = newChild
}

// adopt moves the node and its descendants into the given document.
func (n *Node) adopt(doc *Document) {
	n.ownerDoc = doc
	for child := n.firstChild; child != nil; child = child.nextSibling {
		child.adopt(doc)
	}
}

// RemoveChild removes a child node from this node and returns it. For
// error-returning version, use RemoveChildWithError.
func (n *Node) RemoveChild(child *Node) *Node {
	result, _ := n.RemoveChildWithError(child)
	return result
}

// RemoveChildWithError removes a child node from this node. Returns a
// NotFoundError if the node is not a child of this node.
func (n *Node) RemoveChildWithError(child *Node) (*Node, error) {
	if child == nil || child.parentNode != n {
		return nil, ErrNotFound("the node to be removed is not a child of this node")
	}
	n.removeChildInternal(child)
	return child, nil
}

func (n *Node) removeChildInternal(child *Node) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
}
