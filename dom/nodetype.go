package dom

// NodeType identifies the type of a DOM node, using the numeric values from
// https://dom.spec.whatwg.org/#dom-node-nodetype.
type NodeType int

const (
	// ElementNode is an element such as <div>.
	ElementNode NodeType = 1
	// TextNode is character data.
	TextNode NodeType = 3
	// CommentNode is a comment such as <!-- -->.
	CommentNode NodeType = 8
	// DocumentNode is the document itself.
	DocumentNode NodeType = 9
	// DocumentFragmentNode is a lightweight container, including shadow roots.
	DocumentFragmentNode NodeType = 11
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DocumentNode:
		return "Document"
	case DocumentFragmentNode:
		return "DocumentFragment"
	default:
		return "Unknown"
	}
}
