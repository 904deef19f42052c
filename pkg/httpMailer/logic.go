// Package httpMailer is a thin client for the mailer server's /generate and /send endpoints
package httpMailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded"

// GenerateResponse is the /generate reply. Exactly one field is expected to be set.
type GenerateResponse struct {
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}

// SendRequest .
type SendRequest struct {
	Recipient string
	Subject   string
	Body      string
}

// SendResponse is the /send reply.
type SendResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Option .
type Option func(*Client)

// WithHTTPClient overrides http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// Client .
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New .
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Generate asks the server to turn the prompt into an email text.
// The body is decoded whatever the status code is, the server reports failures as JSON too.
func (c *Client) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	var response GenerateResponse
	err := c.post(ctx, "/generate", encodeOrdered("prompt", prompt), &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// Send asks the server to deliver the email.
func (c *Client) Send(ctx context.Context, req SendRequest) (*SendResponse, error) {
	body := encodeOrdered(
		"recipient", req.Recipient,
		"subject", req.Subject,
		"body", req.Body,
	)

	var response SendResponse
	err := c.post(ctx, "/send", body, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) post(ctx context.Context, path string, body string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.NewDecoder(bytes.NewReader(b)).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode response body (status %d): %w", resp.StatusCode, err)
	}

	return nil
}

// encodeOrdered form-encodes key/value pairs keeping the given order.
// url.Values.Encode sorts by key, which would reorder recipient/subject/body.
func encodeOrdered(kv ...string) string {
	var sb strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv[i]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv[i+1]))
	}

	return sb.String()
}
