// Package server serves HTML pages with their comments rendered.
package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/commentrender/page"
	"github.com/heathj/commentrender/parser"
	"github.com/heathj/commentrender/render"
)

// CommentSectionPage is the page served for a story's comment section.
const CommentSectionPage = "comment_section.html"

// maxBody caps the size of pages accepted by POST /render.
const maxBody = 8 << 20

type Server struct {
	renderer  *render.Renderer
	marker    string
	pagesDir  string
	scripting bool
	log       logrus.FieldLogger
}

type Config struct {
	Renderer  *render.Renderer
	Marker    string
	PagesDir  string
	Scripting bool
	Log       logrus.FieldLogger
}

func New(cfg Config) *Server {
	if cfg.Renderer == nil {
		cfg.Renderer = render.New()
	}
	if cfg.Marker == "" {
		cfg.Marker = render.DefaultMarker
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &Server{
		renderer:  cfg.Renderer,
		marker:    cfg.Marker,
		pagesDir:  cfg.PagesDir,
		scripting: cfg.Scripting,
		log:       cfg.Log,
	}
}

// Router returns the service routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/render", s.handleRender).Methods(http.MethodPost)
	r.HandleFunc("/pages/{name}", s.handlePage).Methods(http.MethodGet)
	r.HandleFunc("/{story_id}/comments", s.handleCommentSection).Methods(http.MethodGet)
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !validPageName(name) {
		http.Error(w, "invalid page name", http.StatusBadRequest)
		return
	}
	s.servePage(w, name)
}

func (s *Server) handleCommentSection(w http.ResponseWriter, r *http.Request) {
	s.log.WithField("story_id", mux.Vars(r)["story_id"]).Debug("comment section requested")
	s.servePage(w, CommentSectionPage)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBody)
	p, err := s.loadPage(body, r.Header.Get("Content-Type"))
	if err != nil {
		s.log.WithError(err).Warn("render request rejected")
		http.Error(w, "failed to read page", http.StatusBadRequest)
		return
	}
	out, err := s.renderPage(p)
	if err != nil {
		s.log.WithError(err).Error("render request failed")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, out)
}

func (s *Server) servePage(w http.ResponseWriter, name string) {
	f, err := os.Open(filepath.Join(s.pagesDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}
		s.log.WithError(err).WithField("page", name).Error("open page")
		http.Error(w, "failed to open page", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	p, err := s.loadPage(f, "")
	if err != nil {
		s.log.WithError(err).WithField("page", name).Error("load page")
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}
	out, err := s.renderPage(p)
	if err != nil {
		s.log.WithError(err).WithField("page", name).Error("render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, out)
}

func (s *Server) loadPage(in io.Reader, contentType string) (*page.Page, error) {
	return page.Load(in, s.log,
		parser.WithContentType(contentType),
		parser.WithScripting(s.scripting),
	)
}

// renderPage renders the comments of p on its ready signal and returns the
// resulting markup.
func (s *Server) renderPage(p *page.Page) (string, error) {
	if err := s.renderer.Attach(p, s.marker); err != nil {
		return "", err
	}
	if err := p.Ready(); err != nil {
		return "", errors.Wrap(err, "render comments")
	}
	return p.HTML(), nil
}

func validPageName(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, `/\`) &&
		!strings.HasPrefix(name, ".") &&
		strings.HasSuffix(name, ".html")
}

func writeHTML(w http.ResponseWriter, out string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

// ListenAndServe serves the router on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("listening")

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	}
}
