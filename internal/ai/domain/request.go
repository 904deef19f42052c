// Package domain holds the provider independent parts of email generation
package domain

import (
	"errors"
	"strings"
)

// SystemInstruction is sent to every provider.
const SystemInstruction = "You are an assistant that writes professional and polite emails."

var (
	// ErrNoResponse means the provider answered without any candidate.
	ErrNoResponse = errors.New("No response from AI model")
	// ErrInvalidResponse means the provider answered with an empty text.
	ErrInvalidResponse = errors.New("Invalid API response format")
)

// Request is a single email generation request.
type Request struct {
	Prompt string
	// Context is optional reference material placed before the prompt.
	Context []string
}

// NewRequest trims the prompt.
func NewRequest(prompt string) Request {
	return Request{Prompt: strings.TrimSpace(prompt)}
}

// UserContent renders the text sent as the user turn.
func (r Request) UserContent() string {
	if len(r.Context) == 0 {
		return r.Prompt
	}

	parts := make([]string, 0, len(r.Context)+3)
	parts = append(parts, "Context from the knowledge base:")
	parts = append(parts, r.Context...)
	parts = append(parts, "", r.Prompt)

	return strings.Join(parts, "\n")
}
