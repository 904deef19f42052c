package gemini_embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/philippgille/chromem-go"
	"google.golang.org/genai"
)

// DefaultModel .
const DefaultModel = "text-embedding-004"

// ErrNoEmbedding is returned when the API answers without vectors.
var ErrNoEmbedding = errors.New("no embeddings returned")

// EmbeddingFunc builds a chromem embedding function backed by the Gemini embedding API.
// The same function embeds the knowledge base documents and the prompts, so the task type is shared.
func EmbeddingFunc(aiClient *genai.Client, embeddingModel string, taskType string) chromem.EmbeddingFunc {
	if embeddingModel == "" {
		embeddingModel = DefaultModel
	}

	return func(ctx context.Context, text string) ([]float32, error) {
		contents := []*genai.Content{
			genai.NewContentFromText(text, genai.RoleUser),
		}
		res, err := aiClient.Models.EmbedContent(ctx, embeddingModel, contents, &genai.EmbedContentConfig{
			TaskType: taskType,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to embed content: %w", err)
		}
		if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
			return nil, ErrNoEmbedding
		}

		return res.Embeddings[0].Values, nil
	}
}
