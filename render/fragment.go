package render

import (
	"strings"

	"github.com/heathj/commentrender/parser"
	"github.com/heathj/commentrender/parser/dom"
)

// FragmentParser interprets raw text as a sequence of markup nodes owned by
// od. The returned nodes must be detached.
type FragmentParser interface {
	ParseFragment(od *dom.Node, raw string) ([]*dom.Node, error)
}

type FragmentParserFunc func(od *dom.Node, raw string) ([]*dom.Node, error)

func (f FragmentParserFunc) ParseFragment(od *dom.Node, raw string) ([]*dom.Node, error) {
	return f(od, raw)
}

// HTMLFragmentParser parses raw text as the inner HTML of a detached <div>.
// Text without markup characters becomes a single text node as is, skipping
// the tokenizer's newline and NUL handling.
//
// Script elements, HTML and SVG alike, are dropped from the result unless
// KeepScripts is set.
type HTMLFragmentParser struct {
	KeepScripts bool
	Scripting   bool
}

func (h *HTMLFragmentParser) ParseFragment(od *dom.Node, raw string) ([]*dom.Node, error) {
	if raw == "" {
		return nil, nil
	}
	if od == nil {
		od = dom.NewDocument()
	}
	if !strings.ContainsAny(raw, "<&") {
		return []*dom.Node{dom.NewTextNode(od, raw)}, nil
	}

	nodes, err := parser.ParseHTMLFragment(dom.NewElement(od, "div", dom.Htmlns), raw, h.Scripting)
	if err != nil {
		return nil, err
	}
	if h.KeepScripts {
		return nodes, nil
	}
	return dropScripts(nodes), nil
}

func dropScripts(nodes []*dom.Node) []*dom.Node {
	kept := nodes[:0]
	for _, n := range nodes {
		if isScript(n) {
			continue
		}
		for _, s := range n.GetElementsByTagName("script") {
			if isScript(s) {
				s.ParentNode.RemoveChild(s)
			}
		}
		kept = append(kept, n)
	}
	return kept
}

func isScript(n *dom.Node) bool {
	return n.IsElement() && n.NodeName == "script" &&
		(n.NamespaceURI == dom.Htmlns || n.NamespaceURI == dom.Svgns)
}
