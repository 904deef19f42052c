package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-email-sender/pkg/httpMailer"
)

func TestTerminalRun(t *testing.T) {
	var sent url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		switch r.URL.Path {
		case "/generate":
			_, _ = w.Write([]byte(`{"email":"Dear Bob, lunch?"}`))
		case "/send":
			sent = r.PostForm
			_, _ = w.Write([]byte(`{"status":"success","message":"Email sent successfully!"}`))
		}
	}))
	defer srv.Close()

	in := strings.NewReader("invite Bob\nbob@example.com\nLunch\n")
	var out bytes.Buffer

	err := newTerminal(in, &out).run(context.Background(), httpMailer.New(srv.URL))
	require.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "Dear Bob, lunch?")
	assert.Contains(t, out.String(), ">> Email sent successfully!")
	assert.Equal(t, "bob@example.com", sent.Get("recipient"))
	assert.Equal(t, "Lunch", sent.Get("subject"))
	assert.Equal(t, "Dear Bob, lunch?", sent.Get("body"))
}

func TestTerminalRunAlert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newTerminal(strings.NewReader("hello\n"), &out).run(context.Background(), httpMailer.New(srv.URL))
	require.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "!! rate limited")
}

func TestTerminalRunFailedRedraftDoesNotSend(t *testing.T) {
	var generated, sends int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		switch r.URL.Path {
		case "/generate":
			generated++
			if generated > 1 {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"rate limited"}`))

				return
			}
			_, _ = w.Write([]byte(`{"email":"Dear Bob, lunch?"}`))
		case "/send":
			sends++
			_, _ = w.Write([]byte(`{"status":"success","message":"Email sent successfully!"}`))
		}
	}))
	defer srv.Close()

	// the first draft is discarded, the second prompt fails, the next line is read as a new prompt
	in := strings.NewReader("invite Bob\n\ninvite Ann\nann@example.com\n")
	var out bytes.Buffer

	err := newTerminal(in, &out).run(context.Background(), httpMailer.New(srv.URL))
	require.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "!! rate limited")
	assert.Equal(t, 3, generated)
	assert.Zero(t, sends)
	assert.Equal(t, 1, strings.Count(out.String(), "Recipient (empty to discard): "))
}
