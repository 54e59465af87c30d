package parser

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/commentrender/parser/dom"
)

// ParseHTMLFragment runs the HTML fragment parsing algorithm over input with
// context as the context element and returns the resulting nodes, detached
// and in parse order. The nodes are owned by context's document.
// https://html.spec.whatwg.org/#html-fragment-parsing-algorithm
func ParseHTMLFragment(context *dom.Node, input string, scriptingEnabled bool) ([]*dom.Node, error) {
	if !context.IsElement() {
		return nil, errors.Errorf("fragment context must be an element, got %s", context.NodeType)
	}

	nodes, err := html.ParseFragmentWithOptions(
		strings.NewReader(input),
		contextNode(context),
		html.ParseOptionEnableScripting(scriptingEnabled),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fragment in <%s>", context.NodeName)
	}

	od := context.OwnerDocument
	out := make([]*dom.Node, 0, len(nodes))
	for _, n := range nodes {
		if in := importNode(od, n); in != nil {
			out = append(out, in)
		}
	}
	return out, nil
}

// contextNode mirrors a dom element, and its form ancestor if it has one,
// as the html.Node the fragment parser needs for its context.
func contextNode(context *dom.Node) *html.Node {
	ctx := &html.Node{
		Type:      html.ElementNode,
		Data:      context.NodeName,
		DataAtom:  atom.Lookup([]byte(context.NodeName)),
		Namespace: context.NamespaceURI.Short(),
	}
	for next := context.ParentNode; next != nil; next = next.ParentNode {
		if next.IsElement() && next.NodeName == "form" {
			form := &html.Node{Type: html.ElementNode, Data: "form", DataAtom: atom.Form}
			form.AppendChild(ctx)
			break
		}
	}
	return ctx
}
