package parser

import (
	"strings"

	"github.com/heathj/commentrender/parser/dom"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true, "br": true,
	"col": true, "embed": true, "frame": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// SerializeHTML serializes the children of node: the whole page for a
// document, the inner HTML for an element.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeHTML(node *dom.Node) string {
	var b strings.Builder
	serializeChildren(&b, node)
	return b.String()
}

func serializeChildren(b *strings.Builder, node *dom.Node) {
	if isVoid(node) {
		return
	}
	for _, child := range node.ChildNodes {
		serializeNode(b, child)
	}
}

func serializeNode(b *strings.Builder, child *dom.Node) {
	switch child.NodeType {
	case dom.ElementNode:
		b.WriteString("<" + tagName(child))
		for _, a := range child.Attributes.Items() {
			b.WriteString(" " + a.Name + "=\"" + escapeString(a.Value, true) + "\"")
		}
		b.WriteString(">")
		if isVoid(child) {
			return
		}
		serializeChildren(b, child)
		b.WriteString("</" + tagName(child) + ">")
	case dom.TextNode:
		if p := child.ParentNode; p != nil && p.IsElement() && p.NamespaceURI == dom.Htmlns {
			// noscript stays escaped: its text is only raw when scripting was on.
			switch p.NodeName {
			case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext":
				b.WriteString(child.Text.Data)
				return
			}
		}
		b.WriteString(escapeString(child.Text.Data, false))
	case dom.CommentNode:
		b.WriteString("<!--" + child.Comment.Data + "-->")
	case dom.DocumentTypeNode:
		b.WriteString("<!DOCTYPE " + child.DocumentType.Name + ">")
	}
}

func isVoid(n *dom.Node) bool {
	return n.IsElement() && n.NamespaceURI == dom.Htmlns && voidElements[n.NodeName]
}

func tagName(n *dom.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.LocalName
	}
	return n.NodeName
}
