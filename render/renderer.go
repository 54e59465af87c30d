// Package render re-interprets the raw text of comment elements as markup.
//
// Comments reach the page as escaped text inside elements marked with the
// comment-content class. Rendering reads that text, empties the element and
// appends the parsed markup in its place. The pass is one-shot: running it
// again reads the concatenated text of the rendered children, which flattens
// any markup the first pass produced.
package render

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/commentrender/page"
	"github.com/heathj/commentrender/parser/dom"
)

// DefaultMarker is the class carried by comment elements.
const DefaultMarker = "comment-content"

var ErrNotElement = errors.New("comment handle is not an element")

// Sanitizer rewrites raw comment text before it is parsed.
// *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(raw string) string
}

type Renderer struct {
	parser    FragmentParser
	sanitizer Sanitizer
	log       logrus.FieldLogger
}

type Option func(*Renderer)

func WithParser(p FragmentParser) Option {
	return func(r *Renderer) { r.parser = p }
}

// WithSanitizer filters raw text through s before parsing. Without one,
// comment markup is rendered live, scripts aside.
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) { r.sanitizer = s }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Renderer) { r.log = log }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		parser: &HTMLFragmentParser{},
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderAll renders each element in order. It stops at the first failure
// and returns it; elements before the failing one stay rendered and the
// failing one may be left empty.
func (r *Renderer) RenderAll(elements []*dom.Node) error {
	for i, el := range elements {
		if err := r.Render(el); err != nil {
			return errors.Wrapf(err, "render comment %d", i)
		}
	}
	r.log.WithField("comments", len(elements)).Debug("rendered comments")
	return nil
}

// Render replaces the text of a single comment element with the nodes its
// text parses into.
func (r *Renderer) Render(el *dom.Node) error {
	if !el.IsElement() {
		return ErrNotElement
	}

	raw := el.TextContent()
	el.SetTextContent("")
	if r.sanitizer != nil {
		raw = r.sanitizer.Sanitize(raw)
	}

	nodes, err := r.parser.ParseFragment(el.OwnerDocument, raw)
	if err != nil {
		return errors.Wrap(err, "parse comment text")
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}

	r.log.WithFields(logrus.Fields{
		"element": el.NodeName,
		"bytes":   len(raw),
		"nodes":   len(nodes),
	}).Debug("rendered comment")
	return nil
}

// RenderDocument renders every element under root carrying the marker class
// and returns how many were found.
func (r *Renderer) RenderDocument(root *dom.Node, marker string) (int, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	elements := root.GetElementsByClassName(marker)
	if err := r.RenderAll(elements); err != nil {
		return len(elements), err
	}
	return len(elements), nil
}

// Attach renders the page's comments when the page becomes ready.
func (r *Renderer) Attach(p *page.Page, marker string) error {
	return p.OnReady(func(doc *dom.Node) error {
		n, err := r.RenderDocument(doc, marker)
		if err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"marker":   marker,
			"comments": n,
		}).Info("comments rendered")
		return nil
	})
}
