// Package groq generates emails through Groq's OpenAI compatible chat completion API
package groq

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"ai-email-sender/internal/ai/domain"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1/"
	DefaultModel   = "llama3-70b-8192"

	requestTimeout = 30 * time.Second
)

// Logic .
type Logic struct {
	logger *slog.Logger
	client openai.Client
	model  string
}

// New .
// Extra request options are appended after the defaults, tests use them to point at a fake API.
func New(logger *slog.Logger, apiKey, baseURL, model string, opts ...option.RequestOption) *Logic {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(requestTimeout),
	}, opts...)

	return &Logic{
		logger: logger,
		client: openai.NewClient(clientOpts...),
		model:  model,
	}
}

// Generate turns the prompt into an email text.
func (l *Logic) Generate(ctx context.Context, prompt string) (string, error) {
	req := domain.NewRequest(prompt)
	l.logger.Info("generating email", slog.String("model", l.model), slog.Int("promptLength", len(req.Prompt)))

	resp, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(l.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(domain.SystemInstruction),
			openai.UserMessage(req.UserContent()),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			l.logger.Error("groq api error", slog.Int("status", apiErr.StatusCode), slog.String("err", apiErr.Message))
			if apiErr.Message == "" {
				return "", errors.New("Unknown error")
			}

			return "", errors.New(apiErr.Message)
		}

		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrNoResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", domain.ErrInvalidResponse
	}

	return text, nil
}
