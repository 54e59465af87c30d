package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

// NewAttr builds an attribute. Name is the qualified name: prefix:local when
// a prefix is present.
func NewAttr(ns Namespace, prefix, localName, value string) *Attr {
	name := localName
	if prefix != "" {
		name = prefix + ":" + localName
	}
	return &Attr{
		Namespace: ns,
		Prefix:    prefix,
		LocalName: localName,
		Name:      name,
		Value:     value,
	}
}
