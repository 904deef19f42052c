package main

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-email-sender/pkg/httpMailer"
)

type fakeAPI struct {
	gen     *httpMailer.GenerateResponse
	send    *httpMailer.SendResponse
	prompt  string
	sendReq httpMailer.SendRequest
}

func (f *fakeAPI) Generate(_ context.Context, prompt string) (*httpMailer.GenerateResponse, error) {
	f.prompt = prompt

	return f.gen, nil
}

func (f *fakeAPI) Send(_ context.Context, req httpMailer.SendRequest) (*httpMailer.SendResponse, error) {
	f.sendReq = req

	return f.send, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return tc.Text
}

func TestGenerateEmail(t *testing.T) {
	api := &fakeAPI{gen: &httpMailer.GenerateResponse{Email: "Dear Ann"}}
	tl := &tools{api: api}

	res, err := tl.generateEmail(context.Background(), callRequest(map[string]any{"prompt": "thank Ann"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Dear Ann", resultText(t, res))
	assert.Equal(t, "thank Ann", api.prompt)

	api.gen = &httpMailer.GenerateResponse{}
	res, err = tl.generateEmail(context.Background(), callRequest(map[string]any{"prompt": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Failed to generate email", resultText(t, res))
}

func TestSendEmail(t *testing.T) {
	api := &fakeAPI{send: &httpMailer.SendResponse{Status: "success", Message: "Email sent successfully!"}}
	tl := &tools{api: api}

	res, err := tl.sendEmail(context.Background(), callRequest(map[string]any{
		"recipient": "bob@example.com",
		"subject":   "Lunch",
		"body":      "Noon?",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Email sent successfully!", resultText(t, res))
	assert.Equal(t, httpMailer.SendRequest{Recipient: "bob@example.com", Subject: "Lunch", Body: "Noon?"}, api.sendReq)

	api.send = &httpMailer.SendResponse{Status: "error", Message: "Invalid recipient email address"}
	res, err = tl.sendEmail(context.Background(), callRequest(map[string]any{"recipient": "bob"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Invalid recipient email address", resultText(t, res))
}

func TestNewMCPServerRegistersTools(t *testing.T) {
	srv := newMCPServer(&tools{api: &fakeAPI{}})
	require.NotNil(t, srv)
}
