// Package mail validates outgoing emails and hands them to a delivery provider
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidRecipient is returned when the recipient is not an email address.
	ErrInvalidRecipient = errors.New("Invalid recipient email address")
	// ErrSendFailed wraps provider errors.
	ErrSendFailed = errors.New("failed to send email")
)

// Message is a plain text email ready for delivery.
type Message struct {
	From    string
	To      string `validate:"required,email"`
	Subject string
	Body    string
}

// Sender delivers a prepared Message.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Service .
type Service struct {
	logger   *slog.Logger
	sender   Sender
	from     string
	validate *validator.Validate
}

// NewService .
func NewService(logger *slog.Logger, sender Sender, from string) *Service {
	return &Service{
		logger:   logger,
		sender:   sender,
		from:     from,
		validate: validator.New(),
	}
}

// Send trims the fields, checks the recipient and delivers the email.
func (s *Service) Send(ctx context.Context, recipient, subject, body string) error {
	msg := &Message{
		From:    s.from,
		To:      strings.TrimSpace(recipient),
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}

	if err := s.validate.Struct(msg); err != nil {
		s.logger.Info("invalid recipient", slog.String("err", err.Error()))

		return ErrInvalidRecipient
	}

	s.logger.Info("sending email", slog.Int("subjectLength", len(msg.Subject)), slog.Int("bodyLength", len(msg.Body)))
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	return nil
}
