// Package retriever answers similarity queries against the live vector index.
package retriever

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/index"
	"github.com/SolarisSy/iast/internal/provider"
)

// ErrNotIngested signals that no index exists yet. Callers surface this as a
// "base de conhecimento ainda não treinada" condition instead of failing.
var ErrNotIngested = errors.New("knowledge base not ingested yet")

// ContextSeparator joins retrieved passages when they are flattened into a
// single prompt context block.
const ContextSeparator = "\n\n---\n\n"

// Retriever embeds a query and ranks stored chunks against it.
type Retriever struct {
	cache    *index.Cache
	embedder provider.Embedder
	topK     int
	logger   *zap.Logger
}

// NewRetriever builds a retriever over the cached index. topK defaults to 6
// when non-positive.
func NewRetriever(cache *index.Cache, embedder provider.Embedder, topK int, logger *zap.Logger) *Retriever {
	if topK <= 0 {
		topK = 6
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{cache: cache, embedder: embedder, topK: topK, logger: logger}
}

// Retrieve returns the contents of the chunks most similar to query, best
// first. Returns ErrNotIngested when the index has never been built.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]string, error) {
	ix, err := r.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if ix == nil {
		return nil, ErrNotIngested
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	hits, err := ix.Search(ctx, queryVec, r.topK)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	contents := make([]string, len(hits))
	for i, hit := range hits {
		contents[i] = hit.Content
	}
	r.logger.Debug("retrieved context",
		zap.Int("hits", len(hits)),
		zap.String("query", query),
	)
	return contents, nil
}

// JoinContext flattens retrieved passages into the block inserted into the
// grounded prompt.
func JoinContext(passages []string) string {
	return strings.Join(passages, ContextSeparator)
}
