package dom

import "strings"

// NamedNodeMap is https://dom.spec.whatwg.org/#interface-namednodemap
//
// Attrs is keyed by qualified name; order keeps insertion order for
// serialization.
type NamedNodeMap struct {
	Length            int
	Attrs             map[string]*Attr
	AssociatedElement *Node

	order []string
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{
		Attrs:             map[string]*Attr{},
		AssociatedElement: oe,
	}
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	return n.getAttributeByName(qn)
}

// normalizeName lowercases qn for HTML elements in an HTML document.
func (n *NamedNodeMap) normalizeName(qn string) string {
	if n.AssociatedElement != nil &&
		n.AssociatedElement.NamespaceURI == Htmlns &&
		n.AssociatedElement.OwnerDocument != nil &&
		n.AssociatedElement.OwnerDocument.NodeType == DocumentNode &&
		n.AssociatedElement.OwnerDocument.Type == "html" {
		return strings.ToLower(qn)
	}
	return qn
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) getAttributeByName(qn string) *Attr {
	if v, ok := n.Attrs[n.normalizeName(qn)]; ok {
		return v
	}
	return nil
}

// SetNamedItem adds s, replacing an attribute with the same qualified name.
// It returns the replaced attribute, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement

	old, ok := n.Attrs[s.Name]
	n.Attrs[s.Name] = s
	if !ok {
		n.order = append(n.order, s.Name)
		n.Length++
		return nil
	}
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	a := n.getAttributeByName(qn)
	if a == nil {
		return nil
	}
	delete(n.Attrs, a.Name)
	for i, name := range n.order {
		if name == a.Name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	n.Length--
	a.OwnerElement = nil
	return a
}

// Items returns the attributes in insertion order.
func (n *NamedNodeMap) Items() []*Attr {
	items := make([]*Attr, 0, len(n.order))
	for _, name := range n.order {
		items = append(items, n.Attrs[name])
	}
	return items
}
