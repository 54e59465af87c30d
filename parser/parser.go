package parser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/heathj/commentrender/parser/dom"
)

// Parser turns an HTML byte stream into a dom document.
type Parser struct {
	input            io.Reader
	contentType      string
	scriptingEnabled bool
	log              logrus.FieldLogger
}

// Option configures a Parser.
type Option func(*Parser)

// WithContentType sets the Content-Type the input was served with. Its
// charset parameter, or a <meta> declaration in the first bytes of the
// input, selects the decoder. Without it the input is sniffed.
func WithContentType(ct string) Option {
	return func(p *Parser) { p.contentType = ct }
}

// WithScripting sets the scripting flag, which decides whether <noscript>
// content is parsed as markup (off) or raw text (on).
func WithScripting(enabled bool) Option {
	return func(p *Parser) { p.scriptingEnabled = enabled }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) { p.log = log }
}

func NewParser(htmlIn io.Reader, opts ...Option) *Parser {
	p := &Parser{
		input: htmlIn,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start parses the whole input and returns the document node.
func (p *Parser) Start() (*dom.Node, error) {
	r, err := charset.NewReader(p.input, p.contentType)
	if err != nil {
		return nil, errors.Wrap(err, "detect input charset")
	}

	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(p.scriptingEnabled))
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}

	doc := dom.NewDocument()
	if p.contentType != "" {
		doc.ContentType = p.contentType
	}
	importChildren(doc, doc, root)
	p.log.WithFields(logrus.Fields{
		"children":  len(doc.ChildNodes),
		"scripting": p.scriptingEnabled,
	}).Debug("parsed document")
	return doc, nil
}
