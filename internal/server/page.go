package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

//go:embed templates static
var assets embed.FS

type pageData struct {
	Title string
}

func (s *Server) getIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, pageData{Title: "AI Email Sender"}); err != nil {
		s.requestLogger(r).Error("failed to render page", slog.String("err", err.Error()))
	}
}

func (s *Server) staticHandler() http.Handler {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err) // embedded at build time
	}

	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
