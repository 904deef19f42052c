package rag

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEmbedder maps texts onto a tiny vector space, one dimension per keyword.
func keywordEmbedder(_ context.Context, text string) ([]float32, error) {
	v := []float32{0.1, 0.1, 0.1}
	text = strings.ToLower(text)
	if strings.Contains(text, "invoice") {
		v[0] += 1
	}
	if strings.Contains(text, "meeting") {
		v[1] += 1
	}

	return v, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestQuery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitkeep", "")
	writeFile(t, dir, "billing.txt", "Invoice questions go to billing@example.com.")
	writeFile(t, dir, "calendar.txt", "Meeting rooms are booked through Ann.")
	writeFile(t, dir, "empty.txt", "   ")

	l, err := New(context.Background(), testLogger(), dir, keywordEmbedder)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	res, err := l.Query(context.Background(), "ask about the invoice", 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Invoice questions go to billing@example.com.", res[0].Content)

	// limit is clamped to the number of documents
	res, err = l.Query(context.Background(), "schedule a meeting", 5)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Meeting rooms are booked through Ann.", res[0].Content)
}

func TestQueryEmpty(t *testing.T) {
	l, err := New(context.Background(), testLogger(), t.TempDir(), keywordEmbedder)
	require.NoError(t, err)

	res, err := l.Query(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(context.Background(), testLogger(), filepath.Join(t.TempDir(), "missing"), keywordEmbedder)
	require.Error(t, err)
}
