package dom

import (
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttrNode:
		return "attr"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case DocumentFragmentNode:
		return "document-fragment"
	}
	return "unknown"
}

// Node is https://dom.spec.whatwg.org/#node
//
// Exactly one of the embedded pointers is set, matching NodeType.
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	*Element
	*Text
	*Comment
	*Document
	*DocumentType
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool {
	return n != nil && n.NodeType == ElementNode && n.Element != nil
}

// AppendChild adds on as the last child of n. If on already has a parent it
// is removed from there first.
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	on.PreviousSibling = n.LastChild
	on.NextSibling = nil
	if n.LastChild != nil {
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// InsertBefore inserts on in front of child. A nil child appends.
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	return on
}

// RemoveChild detaches child from n. It returns nil when child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	} else {
		n.FirstChild = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	} else {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode = nil
	node.PreviousSibling = nil
	node.NextSibling = nil
	return node
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	for n.LastChild != nil {
		n.RemoveChild(n.LastChild)
	}
}

// TextContent is https://dom.spec.whatwg.org/#dom-node-textcontent
//
// For elements it is the concatenation of every descendant text node in tree
// order. Documents and doctypes have none.
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	case ElementNode, DocumentFragmentNode:
		var b strings.Builder
		n.walk(func(d *Node) bool {
			if d.NodeType == TextNode {
				b.WriteString(d.Text.Data)
			}
			return true
		})
		return b.String()
	}
	return ""
}

// SetTextContent replaces all children of an element with a single text node
// holding s, or with nothing when s is empty. Text and comment nodes get
// their data replaced.
func (n *Node) SetTextContent(s string) {
	switch n.NodeType {
	case TextNode:
		n.Text.replaceData(s)
	case CommentNode:
		n.Comment.replaceData(s)
	case ElementNode, DocumentFragmentNode:
		n.RemoveChildren()
		if s != "" {
			n.AppendChild(NewTextNode(n.OwnerDocument, s))
		}
	}
}

// walk visits the descendants of n in tree order. Returning false from fn
// skips the visited node's subtree.
func (n *Node) walk(fn func(*Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if fn(c) {
			c.walk(fn)
		}
	}
}

// GetElementsByClassName returns the descendant elements of n, in tree order,
// whose class list contains every class in classNames.
// https://dom.spec.whatwg.org/#dom-document-getelementsbyclassname
func (n *Node) GetElementsByClassName(classNames string) NodeList {
	want := strings.Fields(classNames)
	if len(want) == 0 {
		return nil
	}

	var found NodeList
	n.walk(func(d *Node) bool {
		if d.IsElement() && d.hasClasses(want) {
			found = append(found, d)
		}
		return true
	})
	return found
}

// GetElementsByTagName returns the descendant elements of n named name, in
// tree order. "*" matches every element.
func (n *Node) GetElementsByTagName(name string) NodeList {
	name = strings.ToLower(name)
	var found NodeList
	n.walk(func(d *Node) bool {
		if d.IsElement() && (name == "*" || d.NodeName == name) {
			found = append(found, d)
		}
		return true
	})
	return found
}

func (n *Node) hasClasses(want []string) bool {
	have := n.ClassList()
	for _, w := range want {
		ok := false
		for _, h := range have {
			if h == w {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
