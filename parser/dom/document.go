package dom

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL, ContentType, CharacterSet string

	// Type is "html" or "xml".
	Type string
}

// NewDocument returns an empty HTML document node. The document owns itself.
func NewDocument() *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{
			Type:         "html",
			ContentType:  "text/html",
			CharacterSet: "UTF-8",
		},
	}
	n.OwnerDocument = n
	return n
}

// Doctype returns the document's doctype child, if any.
func (n *Node) Doctype() *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.NodeType == DocumentTypeNode {
			return c
		}
	}
	return nil
}

// DocumentElement returns the first element child of a document.
func (n *Node) DocumentElement() *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.IsElement() {
			return c
		}
	}
	return nil
}
