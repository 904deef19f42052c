package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"ai-email-sender/internal/ai/echo"
	"ai-email-sender/internal/ai/gemini"
	gemini_embedding "ai-email-sender/internal/ai/gemini-embedding"
	"ai-email-sender/internal/ai/groq"
	"ai-email-sender/internal/config"
	"ai-email-sender/internal/mail"
	"ai-email-sender/internal/mail/resend"
	"ai-email-sender/internal/mail/smtp"
	"ai-email-sender/internal/rag"
	"ai-email-sender/internal/server"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Env)
	logger.Info("starting mailer", slog.String("env", cfg.Env), slog.String("aiProvider", cfg.AI.Provider), slog.String("mailProvider", cfg.Mail.Provider))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiLogic, err := newGenerator(ctx, logger, cfg.AI)
	if err != nil {
		logger.Error("failed to create generator", slog.String("err", err.Error()))
		os.Exit(1)
	}

	mailService := mail.NewService(logger, newSender(cfg.Mail), cfg.Mail.SenderEmail)

	srv := server.New(cfg.HTTPServer.Address, logger, aiLogic, mailService,
		server.WithTimeouts(cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout))

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop server", slog.String("err", err.Error()))
		}
	}()

	logger.Info("starting server", slog.String("addr", cfg.HTTPServer.Address))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newGenerator(ctx context.Context, logger *slog.Logger, cfg config.AI) (generator, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		return groq.New(logger, cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel), nil
	case config.ProviderEcho:
		return echo.New(logger), nil
	case config.ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}

	aiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	// A nil *rag.Logic in the interface would not compare to nil, keep the typed value out.
	if cfg.RAGPath == "" {
		return gemini.New(logger, aiClient, cfg.GeminiModel, cfg.GeminiPersona, nil)
	}

	embedder := gemini_embedding.EmbeddingFunc(aiClient, cfg.GeminiEmbeddingModel, "RETRIEVAL_QUERY")
	ragL, err := rag.New(ctx, logger, cfg.RAGPath, embedder)
	if err != nil {
		return nil, fmt.Errorf("failed to create RAG logic: %w", err)
	}

	return gemini.New(logger, aiClient, cfg.GeminiModel, cfg.GeminiPersona, ragL)
}

func newSender(cfg config.Mail) mail.Sender {
	if cfg.Provider == config.MailResend {
		return resend.New(cfg.ResendAPIKey, cfg.SenderName)
	}

	return smtp.New(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SenderEmail,
		Password: cfg.SenderPassword,
	})
}
