package dom

import "strings"

// Document represents a document: the factory for every other node kind.
type Document Node

// NewDocument creates a new empty HTML document.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// CreateElement creates a new element with the given tag name. The tag name
// is lowercased, matching HTML document behavior. This method ignores errors
// for convenience; use CreateElementWithError for proper error handling.
func (d *Document) CreateElement(tagName string) *Element {
	el, _ := d.CreateElementWithError(tagName)
	return el
}

// CreateElementWithError creates a new element with the given tag name.
// Returns an InvalidCharacterError if the tag name is empty or contains
// characters that cannot start or appear in a tag name.
func (d *Document) CreateElementWithError(tagName string) (*Element, error) {
	if !isValidTagName(tagName) {
		return nil, ErrInvalidCharacter("the tag name provided is not a valid name")
	}
	node := newNode(ElementNode, strings.ToLower(tagName), d)
	return (*Element)(node), nil
}

// CreateTextNode creates a new text node with the given data.
func (d *Document) CreateTextNode(data string) *Node {
	node := newNode(TextNode, "#text", d)
	node.nodeValue = data
	return node
}

// CreateComment creates a new comment node with the given data.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.nodeValue = data
	return node
}

// CreateDocumentFragment creates a new empty document fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	node := newNode(DocumentFragmentNode, "#document-fragment", d)
	return (*DocumentFragment)(node)
}

// isValidTagName checks the characters allowed in a tag name. This is a
// pragmatic subset of the XML Name production: ASCII letters to start, then
// letters, digits, hyphens, underscores and periods.
func isValidTagName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 {
			if !letter {
				return false
			}
			continue
		}
		if letter || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}
