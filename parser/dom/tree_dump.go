package dom

import (
	"sort"
	"strings"
)

// String dumps the tree rooted at n in the html5lib test format:
//
//	#document
//	| <html>
//	|   <body>
//	|     "text"
func (n *Node) String() string {
	var b strings.Builder
	depth := 1
	if n.NodeType == DocumentNode || n.NodeType == DocumentFragmentNode {
		depth = 0
	}
	n.dump(&b, depth)
	return strings.TrimRight(b.String(), "\n")
}

func indent(depth int) string {
	spaces := "| "
	for i := 1; i < depth; i++ {
		spaces += "  "
	}
	return spaces
}

func (n *Node) dump(b *strings.Builder, depth int) {
	if n.NodeType != DocumentNode && n.NodeType != DocumentFragmentNode {
		b.WriteString(indent(depth))
	}
	b.WriteString(dumpNodeType(n, depth+1))
	b.WriteString("\n")
	for _, child := range n.ChildNodes {
		child.dump(b, depth+1)
	}
}

func dumpNodeType(node *Node, depth int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		if ns := node.NamespaceURI.Short(); ns != "" && node.NamespaceURI != Htmlns {
			e += ns + " "
		}
		e += node.NodeName + ">"
		if node.Attributes == nil || node.Attributes.Length == 0 {
			return e
		}
		keys := make([]string, 0, node.Attributes.Length)
		for name := range node.Attributes.Attrs {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		for _, name := range keys {
			attr := node.Attributes.Attrs[name]
			var ns string
			if attr.Namespace != Htmlns {
				ns = attr.Namespace.Short() + " "
				name = attr.LocalName
			}
			e += "\n" + indent(depth) + ns + name + "=\"" + attr.Value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if node.PublicID != "" || node.SystemID != "" {
			d += " \"" + node.PublicID + "\" \"" + node.SystemID + "\""
		}
		return d + ">"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	}
	return ""
}
