// Package gemini contains the Gemini implementation of the email generation
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/philippgille/chromem-go"
	"google.golang.org/genai"

	"ai-email-sender/internal/ai/domain"
)

const ragResultLimit = 3

type knowledgeBase interface {
	Query(ctx context.Context, query string, limit int) ([]chromem.Result, error)
}

// Logic .
type Logic struct {
	logger *slog.Logger

	client  *genai.Client
	model   string
	persona *genai.Content

	// optional, nil disables the knowledge base context
	ragL knowledgeBase
}

// New .
// personaPath may point to a JSON encoded genai.Content overriding the default system instruction.
func New(logger *slog.Logger, client *genai.Client, model string, personaPath string, ragL knowledgeBase) (*Logic, error) {
	persona := genai.NewContentFromText(domain.SystemInstruction, genai.RoleUser)
	if personaPath != "" {
		p, err := readPersona(personaPath)
		if err != nil {
			return nil, err
		}
		persona = p
	}

	return &Logic{
		logger:  logger,
		client:  client,
		model:   model,
		persona: persona,
		ragL:    ragL,
	}, nil
}

// Generate turns the prompt into an email text.
func (l *Logic) Generate(ctx context.Context, prompt string) (string, error) {
	req := domain.NewRequest(prompt)
	logger := l.logger.With(slog.String("model", l.model))
	logger.Info("generating email", slog.Int("promptLength", len(req.Prompt)))

	if l.ragL != nil {
		ragContent, err := l.ragL.Query(ctx, req.Prompt, ragResultLimit)
		if err != nil {
			logger.Error("failed to query RAG content", slog.String("err", err.Error()))

			return "", err
		}

		for _, res := range ragContent {
			req.Context = append(req.Context, res.Content)
		}
		if len(req.Context) > 0 {
			logger.Info("RAG content found, adding to the request", slog.Int("num_results", len(req.Context)))
		}
	}

	zeroBudget := int32(0)
	resp, err := l.client.Models.GenerateContent(ctx, l.model, genai.Text(req.UserContent()), &genai.GenerateContentConfig{
		SystemInstruction: l.persona,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &zeroBudget,
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", domain.ErrNoResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", domain.ErrInvalidResponse
	}

	return text, nil
}

func readPersona(path string) (*genai.Content, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona: %w", err)
	}

	var c genai.Content
	err = json.Unmarshal(b, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse persona: %w", err)
	}

	return &c, nil
}
