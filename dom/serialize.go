package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// voidElements never get end tags or children when serialized.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextElements serialize their text children verbatim.
var rawTextElements = map[string]bool{
	"style": true, "script": true,
}

// serializeNode writes the HTML serialization of a node and its subtree.
func serializeNode(n *Node, sb *strings.Builder) {
	switch n.nodeType {
	case ElementNode:
		name := n.nodeName
		sb.WriteString("<")
		sb.WriteString(name)
		for _, a := range n.attrs {
			sb.WriteString(" ")
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		if voidElements[name] {
			return
		}
		raw := rawTextElements[name]
		for child := n.firstChild; child != nil; child = child.nextSibling {
			if raw && child.nodeType == TextNode {
				sb.WriteString(child.nodeValue)
				continue
			}
			serializeNode(child, sb)
		}
		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteString(">")
	case TextNode:
		sb.WriteString(html.EscapeString(n.nodeValue))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.nodeValue)
		sb.WriteString("-->")
	case DocumentNode, DocumentFragmentNode:
		for child := n.firstChild; child != nil; child = child.nextSibling {
			serializeNode(child, sb)
		}
	}
}

// OuterHTML returns the HTML serialization of the element and its subtree.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	serializeNode(e.AsNode(), &sb)
	return sb.String()
}

// InnerHTML returns the HTML serialization of the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}
