package dom

import "strings"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// NamespaceFromURI maps a namespace URI, or the short names used by HTML
// parsers ("svg", "math"), onto a Namespace.
func NamespaceFromURI(uri string) Namespace {
	switch uri {
	case "svg", "http://www.w3.org/2000/svg":
		return Svgns
	case "math", "http://www.w3.org/1998/Math/MathML":
		return Mathmlns
	case "xlink", "http://www.w3.org/1999/xlink":
		return Xlinkns
	case "xml", "http://www.w3.org/XML/1998/namespace":
		return Xmlns
	case "xmlns", "http://www.w3.org/2000/xmlns/":
		return Xmlnsns
	}
	return Htmlns
}

// Short returns the prefix HTML serializers use for the namespace, empty for
// HTML itself.
func (ns Namespace) Short() string {
	switch ns {
	case Svgns:
		return "svg"
	case Mathmlns:
		return "math"
	case Xlinkns:
		return "xlink"
	case Xmlns:
		return "xml"
	case Xmlnsns:
		return "xmlns"
	}
	return ""
}

// Element is https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap
}

// NewElement creates an element owned by od. The optional argument is the
// namespace prefix.
func NewElement(od *Node, name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
		},
	}
	n.Attributes = NewNamedNodeMap(n)
	return n
}

// GetAttribute returns the value of the named attribute, or "" when n has
// no such attribute or is not an element.
func (n *Node) GetAttribute(qualifiedName string) string {
	if !n.IsElement() {
		return ""
	}
	if a := n.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (n *Node) HasAttribute(qualifiedName string) bool {
	return n.IsElement() && n.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute creates or updates an attribute in no namespace. The name is
// lowercased for HTML elements in an HTML document.
func (n *Node) SetAttribute(qualifiedName, value string) {
	if !n.IsElement() {
		return
	}
	qualifiedName = n.Attributes.normalizeName(qualifiedName)
	if a := n.Attributes.GetNamedItem(qualifiedName); a != nil {
		a.Value = value
		return
	}
	n.Attributes.SetNamedItem(NewAttr(Htmlns, "", qualifiedName, value))
}

// ClassList splits the class attribute on ASCII whitespace.
func (n *Node) ClassList() []string {
	return strings.Fields(n.GetAttribute("class"))
}
