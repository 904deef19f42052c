// Package rag keeps reference documents (signatures, company facts, tone guides)
// in memory and finds the ones relevant to a prompt.
package rag

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/philippgille/chromem-go"
)

const collectionKey = "email-context"

// Logic .
type Logic struct {
	logger  *slog.Logger
	ragPath string

	db           *chromem.DB
	embeddedDocs int
}

// New creates the collection and embeds every file found under ragPath.
func New(ctx context.Context, logger *slog.Logger, ragPath string, embedder chromem.EmbeddingFunc) (*Logic, error) {
	db := chromem.NewDB()
	_, err := db.CreateCollection(collectionKey, nil, embedder)
	if err != nil {
		logger.Error("failed to create RAG collection", slog.String("collection", collectionKey), slog.String("err", err.Error()))

		return nil, err
	}

	l := &Logic{
		logger:  logger,
		ragPath: ragPath,

		db: db,
	}

	return l, l.loadContent(ctx)
}

func (l *Logic) loadContent(ctx context.Context) error {
	l.logger.Info("started loading rag content", slog.String("path", l.ragPath))
	dir := os.DirFS(l.ragPath)

	// embeddingFunc was set during creation
	coll := l.db.GetCollection(collectionKey, nil)

	id := 1
	err := fs.WalkDir(dir, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk dir %s/%s: %w", l.ragPath, path, err)
		}
		if d.IsDir() || d.Name() == ".gitkeep" {
			return nil
		}

		f, err := dir.Open(path)
		if err != nil {
			l.logger.Error("failed to open rag content file", slog.String("path", path), slog.String("err", err.Error()))

			return err
		}
		defer func() { _ = f.Close() }()

		b, err := io.ReadAll(f)
		if err != nil {
			l.logger.Error("failed to read rag content file", slog.String("path", path), slog.String("err", err.Error()))

			return err
		}

		content := strings.TrimSpace(string(b))
		if content == "" {
			l.logger.Warn("skipping empty rag content file", slog.String("path", path))

			return nil
		}

		l.logger.Info("loading rag content", slog.String("path", path))
		err = coll.AddDocument(ctx, chromem.Document{
			ID:       fmt.Sprintf("%d", id),
			Metadata: map[string]string{"path": path},
			Content:  content,
		})
		if err != nil {
			return fmt.Errorf("failed to embed %s: %w", path, err)
		}

		id++

		return nil
	})

	l.embeddedDocs = id - 1
	l.logger.Info("rag embedding done", slog.Int("num", l.embeddedDocs))

	return err
}

// Len is the number of embedded documents.
func (l *Logic) Len() int {
	return l.embeddedDocs
}

// Query returns at most limit documents ordered by similarity.
func (l *Logic) Query(ctx context.Context, query string, limit int) ([]chromem.Result, error) {
	l.logger.Info("rag query", slog.Int("limit", limit))

	if l.embeddedDocs == 0 || limit <= 0 {
		return make([]chromem.Result, 0), nil
	}

	// chromem refuses to return more results than documents
	if limit > l.embeddedDocs {
		limit = l.embeddedDocs
	}

	coll := l.db.GetCollection(collectionKey, nil)
	res, err := coll.Query(ctx, query, limit, nil, nil)
	if err != nil {
		l.logger.Error("failed to query rag content", slog.Int("limit", limit), slog.String("err", err.Error()))

		return nil, err
	}

	l.logger.Info("rag query done", slog.Int("num_results", len(res)))

	return res, nil
}
