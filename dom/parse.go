package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseHTMLFragment parses HTML markup in the context of the given element
// (or a div when context is nil) and converts the result into this package's
// nodes.
func parseHTMLFragment(doc *Document, markup string, context *Element) ([]*Node, error) {
	ctxName := "div"
	if context != nil {
		ctxName = context.LocalName()
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     ctxName,
		DataAtom: atom.Lookup([]byte(ctxName)),
	}

	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}

	var nodes []*Node
	for _, hn := range parsed {
		if node := convertHTMLNode(doc, hn); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// convertHTMLNode converts one x/net/html node (and its subtree) into this
// package's representation. Unhandled node kinds (doctypes, nested documents)
// are dropped.
func convertHTMLNode(doc *Document, hn *html.Node) *Node {
	switch hn.Type {
	case html.ElementNode:
		el := doc.CreateElement(hn.Data)
		if el == nil {
			return nil
		}
		for _, a := range hn.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		for child := hn.FirstChild; child != nil; child = child.NextSibling {
			if node := convertHTMLNode(doc, child); node != nil {
				el.AsNode().AppendChild(node)
			}
		}
		return el.AsNode()
	case html.TextNode:
		return doc.CreateTextNode(hn.Data)
	case html.CommentNode:
		return doc.CreateComment(hn.Data)
	default:
		return nil
	}
}
