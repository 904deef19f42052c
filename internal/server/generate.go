package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type generateResponse struct {
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) postGenerate(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	values, ok := requireForm(r, "prompt")
	if !ok {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, generateResponse{Error: "prompt is required"})

		return
	}

	email, err := s.logic.Generate(r.Context(), values[0])
	if err != nil {
		logger.Error("failed to generate email", slog.String("err", err.Error()))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, generateResponse{Error: err.Error()})

		return
	}

	logger.Info("email generated", slog.Int("length", len(email)))
	render.JSON(w, r, generateResponse{Email: email})
}
