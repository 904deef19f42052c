// Package smtp delivers emails through an SMTP server, Gmail over SSL by default
package smtp

import (
	"context"

	"gopkg.in/gomail.v2"

	"ai-email-sender/internal/mail"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 465
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config .
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Sender implements mail.Sender.
type Sender struct {
	dialer dialer
}

// New .
// gomail switches to implicit TLS when the port is 465.
func New(cfg Config) *Sender {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send implements mail.Sender.
// gomail has no context support, an expired context abandons the running dial.
func (s *Sender) Send(ctx context.Context, msg *mail.Message) error {
	m := newMessage(msg)

	c := make(chan error, 1)
	go func() { c <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-c:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newMessage(msg *mail.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return m
}
