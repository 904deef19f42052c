// Package config reads the service configuration from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
	ProviderEcho   = "echo"

	MailSMTP   = "smtp"
	MailResend = "resend"
)

// Config .
type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTPServer HTTPServer
	AI         AI
	Mail       Mail
}

// HTTPServer .
type HTTPServer struct {
	Address     string        `env:"ADDR" env-default:":8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"60s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// AI .
type AI struct {
	Provider string `env:"AI_PROVIDER" env-default:"groq"`

	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" env-default:"https://api.groq.com/openai/v1/"`
	GroqModel   string `env:"GROQ_MODEL" env-default:"llama3-70b-8192"`

	GeminiAPIKey         string `env:"GEMINI_API_KEY"`
	GeminiModel          string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
	GeminiEmbeddingModel string `env:"GEMINI_EMBEDDING_MODEL" env-default:"text-embedding-004"`
	GeminiPersona        string `env:"GEMINI_PERSONA"` // optional JSON genai.Content file

	RAGPath string `env:"RAG_PATH"` // empty disables the knowledge base
}

// Mail .
type Mail struct {
	Provider       string `env:"MAIL_PROVIDER" env-default:"smtp"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderName     string `env:"SENDER_NAME"`
	SenderPassword string `env:"SENDER_PASSWORD"`
	SMTPHost       string `env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" env-default:"465"`
	ResendAPIKey   string `env:"RESEND_API_KEY"`
}

// Load reads envFile when it exists, then the environment. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, cfg.Validate()
}

// Validate reports every missing variable the selected providers need.
func (c *Config) Validate() error {
	missing := make([]string, 0)

	switch c.AI.Provider {
	case ProviderGroq:
		if c.AI.GroqAPIKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
	case ProviderGemini:
		if c.AI.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	case ProviderEcho:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}

	if c.Mail.SenderEmail == "" {
		missing = append(missing, "SENDER_EMAIL")
	}

	switch c.Mail.Provider {
	case MailSMTP:
		if c.Mail.SenderPassword == "" {
			missing = append(missing, "SENDER_PASSWORD")
		}
	case MailResend:
		if c.Mail.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// NewLogger returns the slog logger matching the environment.
func NewLogger(env string) *slog.Logger {
	switch env {
	case EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
