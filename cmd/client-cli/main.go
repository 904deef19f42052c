package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"ai-email-sender/pkg/form"
	"ai-email-sender/pkg/httpMailer"
)

func main() {
	serverURL := "http://127.0.0.1:8080"
	if os.Getenv("SERVER_URL") != "" {
		serverURL = os.Getenv("SERVER_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	t := newTerminal(os.Stdin, os.Stdout)
	if err := t.run(ctx, httpMailer.New(serverURL)); err != nil && !errors.Is(err, io.EOF) {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// terminal is a line based page: every element is an in-memory field echoed to out.
type terminal struct {
	in   *bufio.Reader
	out  io.Writer
	spin *spinner.Spinner

	prompt, body, recipient, subject *form.Field
	section                          *form.Section
	status                           *form.Label

	// drafted is set when the last generation filled the body.
	drafted bool
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	t := &terminal{
		in:        bufio.NewReader(in),
		out:       out,
		spin:      spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out)),
		prompt:    form.NewField(""),
		body:      form.NewField(""),
		recipient: form.NewField(""),
		subject:   form.NewField(""),
		section:   &form.Section{},
		status:    &form.Label{},
	}
	t.body.OnChange = func(v string) {
		t.drafted = true
		fmt.Fprintf(t.out, "\n----- draft -----\n%s\n-----------------\n", v)
	}
	t.status.OnChange = func(s string) {
		fmt.Fprintln(t.out, ">>", s)
	}

	return t
}

func (t *terminal) elements() form.Elements {
	return form.Elements{
		Prompt:       t.prompt,
		EmailSection: t.section,
		EmailBody:    t.body,
		Recipient:    t.recipient,
		Subject:      t.subject,
		Status:       t.status,
		Alerter: form.AlertFunc(func(msg string) {
			fmt.Fprintln(t.out, "!!", msg)
		}),
	}
}

func (t *terminal) run(ctx context.Context, api *httpMailer.Client) error {
	c := form.New(api, t.elements())

	for {
		input, err := t.ask("> ")
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		t.prompt.SetValue(input)
		t.drafted = false

		t.spin.Start()
		err = c.HandleGenerateSubmit(ctx, nil)
		t.spin.Stop()
		if err != nil || !t.drafted {
			// the controller already alerted
			continue
		}

		recipient, err := t.ask("Recipient (empty to discard): ")
		if err != nil {
			return err
		}
		if recipient == "" {
			continue
		}
		subject, err := t.ask("Subject: ")
		if err != nil {
			return err
		}
		t.recipient.SetValue(recipient)
		t.subject.SetValue(subject)

		t.spin.Start()
		_ = c.SendEmail(ctx)
		t.spin.Stop()
	}
}

func (t *terminal) ask(label string) (string, error) {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
