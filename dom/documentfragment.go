package dom

// DocumentFragment represents a lightweight container node. Inserting a
// fragment into the tree splices its children in and leaves it empty.
type DocumentFragment Node

// AsNode returns the underlying Node.
func (f *DocumentFragment) AsNode() *Node {
	return (*Node)(f)
}

// NodeType returns DocumentFragmentNode (11).
func (f *DocumentFragment) NodeType() NodeType {
	return DocumentFragmentNode
}

// NodeName returns "#document-fragment".
func (f *DocumentFragment) NodeName() string {
	return "#document-fragment"
}
