package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"ai-email-sender/internal/mail"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	sentMessage = "Email sent successfully!"
)

type sendResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// postSend always answers 200 once the form is complete, the outcome is in the status field.
func (s *Server) postSend(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	values, ok := requireForm(r, "recipient", "subject", "body")
	if !ok {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, sendResponse{Error: "recipient, subject and body are required"})

		return
	}

	err := s.mail.Send(r.Context(), values[0], values[1], values[2])
	if err != nil {
		if errors.Is(err, mail.ErrInvalidRecipient) {
			logger.Info("rejected recipient")
		} else {
			logger.Error("failed to send email", slog.String("err", err.Error()))
		}

		render.JSON(w, r, sendResponse{Status: statusError, Message: err.Error()})

		return
	}

	logger.Info("email sent")
	render.JSON(w, r, sendResponse{Status: statusSuccess, Message: sentMessage})
}

// requireForm returns the named form values, ok is false when any of them is absent
// or empty.
func requireForm(r *http.Request, keys ...string) ([]string, bool) {
	if err := r.ParseForm(); err != nil {
		return nil, false
	}

	res := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := r.PostForm[k]
		if !ok || len(v) == 0 || v[0] == "" {
			return nil, false
		}
		res = append(res, strings.TrimSpace(v[0]))
	}

	return res, true
}
