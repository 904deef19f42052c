// Package form drives the generate-and-send email page: it submits the prompt,
// shows the generated text and sends the edited email.
//
// The controller never looks elements up by itself, the page hands them over in Elements.
package form

import (
	"context"
	"fmt"

	"ai-email-sender/pkg/httpMailer"
)

// FallbackGenerateError is alerted when the server neither returns an email nor an error.
const FallbackGenerateError = "Failed to generate email"

type mailerAPI interface {
	Generate(ctx context.Context, prompt string) (*httpMailer.GenerateResponse, error)
	Send(ctx context.Context, req httpMailer.SendRequest) (*httpMailer.SendResponse, error)
}

// Controller .
type Controller struct {
	api mailerAPI
	el  Elements
}

// New .
func New(api mailerAPI, el Elements) *Controller {
	return &Controller{
		api: api,
		el:  el,
	}
}

// HandleGenerateSubmit handles the generate form submission.
// A transport or decoding failure is alerted and returned.
func (c *Controller) HandleGenerateSubmit(ctx context.Context, ev Event) error {
	if ev != nil {
		ev.PreventDefault()
	}

	prompt := c.el.Prompt.Value()

	resp, err := c.api.Generate(ctx, prompt)
	if err != nil {
		c.el.Alerter.Alert(fmt.Sprintf("%s: %s", FallbackGenerateError, err.Error()))

		return fmt.Errorf("generate: %w", err)
	}

	if resp.Email != "" {
		c.el.EmailSection.Show()
		c.el.EmailBody.SetValue(resp.Email)

		return nil
	}

	msg := resp.Error
	if msg == "" {
		msg = FallbackGenerateError
	}
	c.el.Alerter.Alert(msg)

	return nil
}

// SendEmail sends the current recipient, subject and body and shows the outcome in the status node.
func (c *Controller) SendEmail(ctx context.Context) error {
	req := httpMailer.SendRequest{
		Recipient: c.el.Recipient.Value(),
		Subject:   c.el.Subject.Value(),
		Body:      c.el.EmailBody.Value(),
	}

	resp, err := c.api.Send(ctx, req)
	if err != nil {
		c.el.Status.SetText(fmt.Sprintf("Failed to send email: %s", err.Error()))

		return fmt.Errorf("send: %w", err)
	}

	// Neither field set leaves the status empty.
	status := resp.Message
	if status == "" {
		status = resp.Error
	}
	c.el.Status.SetText(status)

	return nil
}
