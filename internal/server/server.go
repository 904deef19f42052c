// Package server is the HTTP server implementation for email generation and sending
package server

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ai interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Option .
type Option func(*http.Server)

// WithTimeouts sets the read/write and idle timeouts. Write must outlive a generation call.
func WithTimeouts(timeout, idle time.Duration) Option {
	return func(s *http.Server) {
		s.ReadTimeout = timeout
		s.WriteTimeout = timeout
		s.IdleTimeout = idle
	}
}

// Server .
type Server struct {
	h      *chi.Mux
	srv    *http.Server
	logger *slog.Logger
	logic  ai
	mail   mailer
	page   *template.Template
}

// New .
func New(addr string, logger *slog.Logger, aiLogic ai, mail mailer, opts ...Option) *Server {
	h := chi.NewMux()
	s := &Server{
		h:      h,
		srv:    &http.Server{Addr: addr, Handler: h},
		logger: logger,
		logic:  aiLogic,
		mail:   mail,
		page:   template.Must(template.ParseFS(assets, "templates/index.html")),
	}
	for _, o := range opts {
		o(s.srv)
	}
	s.addRoutes()

	return s
}

func (s *Server) addRoutes() {
	s.h.Use(middleware.RequestID)
	s.h.Use(middleware.RealIP)
	s.h.Use(middleware.Recoverer)

	s.h.Get("/", s.getIndex)
	s.h.Handle("/static/*", s.staticHandler())
	s.h.Get("/healthz", s.getHealth)
	s.h.Post("/generate", s.postGenerate)
	s.h.Post("/send", s.postSend)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.h
}

// Start .
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Stop .
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) requestLogger(r *http.Request) *slog.Logger {
	return s.logger.With(slog.String("request_id", middleware.GetReqID(r.Context())))
}
