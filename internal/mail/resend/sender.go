// Package resend delivers emails through the Resend API
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"ai-email-sender/internal/mail"
)

type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mail.Sender using the Resend API.
type Sender struct {
	emails     emailsAPI
	senderName string
}

// New .
func New(apiKey, senderName string) *Sender {
	return &Sender{
		emails:     resend.NewClient(apiKey).Emails,
		senderName: senderName,
	}
}

// Send implements mail.Sender.
func (s *Sender) Send(ctx context.Context, msg *mail.Message) error {
	_, err := s.emails.SendWithContext(ctx, s.request(msg))
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	return nil
}

func (s *Sender) request(msg *mail.Message) *resend.SendEmailRequest {
	from := msg.From
	if s.senderName != "" {
		from = fmt.Sprintf("%s <%s>", s.senderName, msg.From)
	}

	return &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Body,
	}
}
