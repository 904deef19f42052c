package resend

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-email-sender/internal/mail"
)

type fakeEmails struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}

	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestSend(t *testing.T) {
	fe := &fakeEmails{}
	s := &Sender{emails: fe, senderName: "Mailer"}

	err := s.Send(context.Background(), &mail.Message{
		From:    "me@example.com",
		To:      "bob@example.com",
		Subject: "Lunch",
		Body:    "See you at noon",
	})
	require.NoError(t, err)

	assert.Equal(t, &resend.SendEmailRequest{
		From:    "Mailer <me@example.com>",
		To:      []string{"bob@example.com"},
		Subject: "Lunch",
		Text:    "See you at noon",
	}, fe.got)
}

func TestSendError(t *testing.T) {
	boom := errors.New("validation_error")
	s := &Sender{emails: &fakeEmails{err: boom}}

	err := s.Send(context.Background(), &mail.Message{From: "me@example.com", To: "bob@example.com"})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "resend: validation_error", err.Error())
}
