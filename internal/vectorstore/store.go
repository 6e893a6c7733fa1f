package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SolarisSy/iast/internal/models"
	"github.com/SolarisSy/iast/internal/provider"
)

// ErrNotFound is returned by Load when no index has been persisted yet.
var ErrNotFound = errors.New("vector index not found")

const (
	chunkDBFile    = "chunks.db"
	vectorFile     = "vectors.bin"
	embedBatchSize = 128
)

// Store persists vector indexes at a fixed directory path.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store rooted at path. logger may be nil.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the live index directory path.
func (s *Store) Path() string {
	return s.path
}

// Rebuild embeds all chunk contents, stages a fresh index next to the live
// path, and atomically swaps it in. The previous index is untouched until the
// new one is fully written, so a failed rebuild (embedding error, timeout,
// disk error) leaves the prior state intact. Returns the built index already
// loaded in memory.
func (s *Store) Rebuild(ctx context.Context, chunks []models.Chunk, embedder provider.Embedder) (*VectorIndex, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("rebuild requires at least one chunk")
	}

	texts := make([]string, len(chunks))
	ids := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Content
		ids[i] = ch.ID
	}
	vectors, err := embedAll(ctx, embedder, texts)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	dimensions := len(vectors[0])

	staging := s.path + ".staging-" + uuid.New().String()[:8]
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	db, err := openChunkDB(filepath.Join(staging, chunkDBFile))
	if err != nil {
		return nil, err
	}
	if err := writeChunks(ctx, db, chunks); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("close chunk database: %w", err)
	}
	if err := writeVectors(filepath.Join(staging, vectorFile), ids, vectors, dimensions); err != nil {
		return nil, err
	}

	if err := s.replaceLive(staging); err != nil {
		return nil, err
	}
	s.logger.Info("vector index rebuilt",
		zap.Int("chunks", len(chunks)),
		zap.Int("dimensions", dimensions),
		zap.String("path", s.path))

	entries := make([]indexEntry, len(chunks))
	for i, ch := range chunks {
		entries[i] = indexEntry{id: ch.ID, content: ch.Content, metadata: ch.Metadata, vector: vectors[i]}
	}
	return &VectorIndex{dimensions: dimensions, entries: entries}, nil
}

// replaceLive swaps staging into the live path. The old index is moved aside
// first, then removed, so the live path never holds a partially written index.
func (s *Store) replaceLive(staging string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create index parent dir: %w", err)
	}
	old := s.path + ".old"
	_ = os.RemoveAll(old)
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, old); err != nil {
			return fmt.Errorf("move previous index aside: %w", err)
		}
	}
	if err := os.Rename(staging, s.path); err != nil {
		// Best effort restore of the previous index.
		_ = os.Rename(old, s.path)
		return fmt.Errorf("activate new index: %w", err)
	}
	_ = os.RemoveAll(old)
	return nil
}

// Load reads the persisted index into memory. Returns ErrNotFound when no
// index directory exists at the store path.
func (s *Store) Load(ctx context.Context) (*VectorIndex, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat index: %w", err)
	}
	db, err := openChunkDB(filepath.Join(s.path, chunkDBFile))
	if err != nil {
		return nil, err
	}
	defer db.Close()
	rows, err := readChunks(ctx, db)
	if err != nil {
		return nil, err
	}
	vectors, dimensions, err := readVectors(filepath.Join(s.path, vectorFile))
	if err != nil {
		return nil, err
	}

	entries := make([]indexEntry, 0, len(rows))
	for _, r := range rows {
		vec, ok := vectors[r.ID]
		if !ok {
			return nil, fmt.Errorf("chunk %s has no vector; index is corrupt", r.ID)
		}
		entries = append(entries, indexEntry{id: r.ID, content: r.Content, metadata: r.Meta, vector: vec})
	}
	s.logger.Info("vector index loaded",
		zap.Int("chunks", len(entries)),
		zap.Int("dimensions", dimensions),
		zap.String("path", s.path))
	return &VectorIndex{dimensions: dimensions, entries: entries}, nil
}

// embedAll embeds texts in bounded batches, preserving order.
func embedAll(ctx context.Context, embedder provider.Embedder, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := embedder.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, batch...)
	}
	for i := 1; i < len(vectors); i++ {
		if len(vectors[i]) != len(vectors[0]) {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(vectors[i]), len(vectors[0]))
		}
	}
	return vectors, nil
}
