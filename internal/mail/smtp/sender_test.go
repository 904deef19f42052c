package smtp

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"ai-email-sender/internal/mail"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	block chan struct{}
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.sent = append(f.sent, m...)

	return f.err
}

func TestSend(t *testing.T) {
	fd := &fakeDialer{}
	s := &Sender{dialer: fd}

	err := s.Send(context.Background(), &mail.Message{
		From:    "me@example.com",
		To:      "bob@example.com",
		Subject: "Lunch",
		Body:    "See you at noon",
	})
	require.NoError(t, err)
	require.Len(t, fd.sent, 1)

	m := fd.sent[0]
	assert.Equal(t, []string{"me@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"bob@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Lunch"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/plain")
	assert.Contains(t, buf.String(), "See you at noon")
}

func TestSendError(t *testing.T) {
	boom := errors.New("535 authentication failed")
	s := &Sender{dialer: &fakeDialer{err: boom}}

	err := s.Send(context.Background(), &mail.Message{To: "bob@example.com"})
	require.ErrorIs(t, err, boom)
}

func TestSendContextDone(t *testing.T) {
	fd := &fakeDialer{block: make(chan struct{})}
	defer close(fd.block)
	s := &Sender{dialer: fd}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Send(ctx, &mail.Message{To: "bob@example.com"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Username: "me@example.com", Password: "secret"})

	d, ok := s.dialer.(*gomail.Dialer)
	require.True(t, ok)
	assert.Equal(t, DefaultHost, d.Host)
	assert.Equal(t, DefaultPort, d.Port)
	assert.True(t, d.SSL)
}
