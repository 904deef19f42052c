package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ai-email-sender/pkg/httpMailer"
)

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8081"
	}

	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://127.0.0.1:8080"
	}

	srv := newMCPServer(&tools{api: httpMailer.New(serverURL)})

	streamableSrv := server.NewStreamableHTTPServer(srv)
	slog.Info("starting Streamable HTTP server", slog.String("addr", addr), slog.String("mailer", serverURL))
	if err := streamableSrv.Start(addr); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error(err.Error())
		}
	}
}

type mailerAPI interface {
	Generate(ctx context.Context, prompt string) (*httpMailer.GenerateResponse, error)
	Send(ctx context.Context, req httpMailer.SendRequest) (*httpMailer.SendResponse, error)
}

type tools struct {
	api mailerAPI
}

func newMCPServer(t *tools) *server.MCPServer {
	srv := server.NewMCPServer("AI email sender", "0.1.0")

	srv.AddTool(mcp.NewTool("generate_email",
		mcp.WithDescription("Drafts a professional and polite email from a short description of what it should say"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("What the email should say"),
		),
	), t.generateEmail)

	srv.AddTool(mcp.NewTool("send_email",
		mcp.WithDescription("Sends a plain text email"),
		mcp.WithString("recipient", mcp.Required(), mcp.Description("Recipient email address")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Email body")),
	), t.sendEmail)

	return srv
}

func (t *tools) generateEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt := request.GetString("prompt", "")
	slog.Info("handling generate_email", slog.Int("promptLength", len(prompt)))

	resp, err := t.api.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if resp.Email == "" {
		msg := resp.Error
		if msg == "" {
			msg = "Failed to generate email"
		}

		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(resp.Email), nil
}

func (t *tools) sendEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Info("handling send_email")

	resp, err := t.api.Send(ctx, httpMailer.SendRequest{
		Recipient: request.GetString("recipient", ""),
		Subject:   request.GetString("subject", ""),
		Body:      request.GetString("body", ""),
	})
	if err != nil {
		return nil, err
	}

	msg := resp.Message
	if msg == "" {
		msg = resp.Error
	}
	if resp.Status != "success" {
		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(msg), nil
}
