package parser

import (
	"golang.org/x/net/html"

	"github.com/heathj/commentrender/parser/dom"
)

// importNode copies an html.Node subtree into od's dom. Error and raw nodes
// have no dom counterpart and are dropped.
func importNode(od *dom.Node, n *html.Node) *dom.Node {
	var out *dom.Node
	switch n.Type {
	case html.ElementNode:
		out = dom.NewElement(od, n.Data, dom.NamespaceFromURI(n.Namespace))
		for _, a := range n.Attr {
			ns := dom.Htmlns
			if a.Namespace != "" {
				ns = dom.NamespaceFromURI(a.Namespace)
			}
			out.Attributes.SetNamedItem(dom.NewAttr(ns, a.Namespace, a.Key, a.Val))
		}
	case html.TextNode:
		return dom.NewTextNode(od, n.Data)
	case html.CommentNode:
		return dom.NewComment(od, n.Data)
	case html.DoctypeNode:
		var pub, sys string
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				pub = a.Val
			case "system":
				sys = a.Val
			}
		}
		return dom.NewDocTypeNode(od, n.Data, pub, sys)
	default:
		return nil
	}

	importChildren(od, out, n)
	return out
}

func importChildren(od, parent *dom.Node, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if in := importNode(od, c); in != nil {
			parent.AppendChild(in)
		}
	}
}
