package ingest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/index"
	"github.com/SolarisSy/iast/internal/models"
	"github.com/SolarisSy/iast/internal/provider"
	"github.com/SolarisSy/iast/internal/vectorstore"
)

// CorpusLoader yields the documents to index.
type CorpusLoader interface {
	Load() ([]models.Document, error)
}

// Pipeline runs a full corpus ingestion: load, split, sanitize, embed, swap
// the persisted index and refresh the cache.
type Pipeline struct {
	loader   CorpusLoader
	chunker  *Chunker
	store    *vectorstore.Store
	cache    *index.Cache
	embedder provider.Embedder
	logger   *zap.Logger
}

// NewPipeline wires an ingestion pipeline.
func NewPipeline(loader CorpusLoader, chunker *Chunker, store *vectorstore.Store, cache *index.Cache, embedder provider.Embedder, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		loader:   loader,
		chunker:  chunker,
		store:    store,
		cache:    cache,
		embedder: embedder,
		logger:   logger,
	}
}

// Run performs one ingestion. Only one run may be active at a time; a
// concurrent call fails fast with index.ErrRebuildInProgress. An empty corpus
// is a no-op success with zero chunks, the previous index stays live.
//
// On any failure after the corpus loads, the previous persisted index and the
// cached in-memory index are left untouched.
func (p *Pipeline) Run(ctx context.Context) (*models.IngestResult, error) {
	if err := p.cache.BeginRebuild(); err != nil {
		return nil, err
	}
	defer p.cache.EndRebuild()

	docs, err := p.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(docs) == 0 {
		p.logger.Warn("corpus is empty, keeping existing index")
		return &models.IngestResult{}, nil
	}

	chunks, err := Sanitize(p.chunker.Split(docs))
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		p.logger.Warn("no usable chunks after sanitization, keeping existing index")
		return &models.IngestResult{Documents: len(docs)}, nil
	}

	built, err := p.store.Rebuild(ctx, chunks, p.embedder)
	if err != nil {
		// The cache still holds the previous index. Do not invalidate, the
		// store guarantees the old files survived the failed swap.
		return nil, fmt.Errorf("rebuilding index: %w", err)
	}
	p.cache.Set(built)

	p.logger.Info("ingestion complete",
		zap.Int("documents", len(docs)),
		zap.Int("chunks", len(chunks)),
	)
	return &models.IngestResult{Documents: len(docs), Chunks: len(chunks)}, nil
}

// IsConcurrentRun reports whether err came from a rejected overlapping run.
func IsConcurrentRun(err error) bool {
	return errors.Is(err, index.ErrRebuildInProgress)
}
