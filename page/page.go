// Package page holds a parsed HTML document together with its ready signal,
// the single point where code that mutates the page waits for the tree to be
// fully constructed.
package page

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/commentrender/parser"
	"github.com/heathj/commentrender/parser/dom"
)

// https://html.spec.whatwg.org/#current-document-readiness
type DocumentReadyState string

const (
	Loading     DocumentReadyState = "loading"
	Interactive DocumentReadyState = "interactive"
	Complete    DocumentReadyState = "complete"
)

// ReadyFunc runs once the page is ready for manipulation.
type ReadyFunc func(doc *dom.Node) error

type Page struct {
	Document *dom.Node

	mu         sync.Mutex
	readyState DocumentReadyState
	handlers   []ReadyFunc
	log        logrus.FieldLogger
}

// New wraps an already constructed document.
func New(doc *dom.Node, log logrus.FieldLogger) *Page {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Page{
		Document:   doc,
		readyState: Interactive,
		log:        log,
	}
}

// Load parses r into a page whose tree is built but whose ready handlers
// have not run yet.
func Load(r io.Reader, log logrus.FieldLogger, opts ...parser.Option) (*Page, error) {
	if log != nil {
		opts = append(opts, parser.WithLogger(log))
	}
	doc, err := parser.NewParser(r, opts...).Start()
	if err != nil {
		return nil, errors.Wrap(err, "load page")
	}
	return New(doc, log), nil
}

func (p *Page) ReadyState() DocumentReadyState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readyState
}

// OnReady registers fn to run when the page becomes ready. On a page that
// is already complete fn runs immediately and its error is returned.
func (p *Page) OnReady(fn ReadyFunc) error {
	p.mu.Lock()
	if p.readyState != Complete {
		p.handlers = append(p.handlers, fn)
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return fn(p.Document)
}

// Ready fires the ready signal. Handlers run once, in registration order, on
// the calling goroutine. The first handler error stops the pass and is
// returned; the page is complete either way and later calls do nothing.
func (p *Page) Ready() error {
	p.mu.Lock()
	if p.readyState == Complete {
		p.mu.Unlock()
		return nil
	}
	p.readyState = Complete
	handlers := p.handlers
	p.handlers = nil
	p.mu.Unlock()

	p.log.WithField("handlers", len(handlers)).Debug("page ready")
	for i, fn := range handlers {
		if err := fn(p.Document); err != nil {
			return errors.Wrapf(err, "ready handler %d", i)
		}
	}
	return nil
}

// HTML serializes the current state of the document.
func (p *Page) HTML() string {
	return parser.SerializeHTML(p.Document)
}
