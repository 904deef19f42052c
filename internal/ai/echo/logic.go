// Package echo is an offline generator for local development, it never calls an AI provider
package echo

import (
	"context"
	"fmt"
	"log/slog"

	"ai-email-sender/internal/ai/domain"
)

// Logic .
type Logic struct {
	logger *slog.Logger
}

// New .
func New(logger *slog.Logger) *Logic {
	return &Logic{
		logger: logger,
	}
}

// Generate wraps the prompt into a fixed email skeleton.
func (l *Logic) Generate(ctx context.Context, prompt string) (string, error) {
	req := domain.NewRequest(prompt)
	l.logger.Debug("echo generation", slog.Int("promptLength", len(req.Prompt)))

	if req.Prompt == "" {
		return "", domain.ErrInvalidResponse
	}

	return fmt.Sprintf("Hello,\n\n%s\n\nBest regards", req.Prompt), nil
}
