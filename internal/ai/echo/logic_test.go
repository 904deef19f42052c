package echo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-email-sender/internal/ai/domain"
)

func TestGenerate(t *testing.T) {
	l := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	text, err := l.Generate(context.Background(), "  I will be late today. ")
	require.NoError(t, err)
	assert.Equal(t, "Hello,\n\nI will be late today.\n\nBest regards", text)

	_, err = l.Generate(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrInvalidResponse)
}
