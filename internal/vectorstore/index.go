// Package vectorstore persists chunk embeddings and metadata and serves
// nearest-neighbor search over them. An index on disk is a directory holding
// a SQLite database of chunk rows and a binary vector file; in memory it is
// a VectorIndex loaded as a whole.
package vectorstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/SolarisSy/iast/internal/models"
	"github.com/SolarisSy/iast/pkg/utils"
)

// SearchHit is a single nearest-neighbor match.
type SearchHit struct {
	Content  string
	Metadata models.ChunkMetadata
	Score    float64
}

type indexEntry struct {
	id       string
	content  string
	metadata models.ChunkMetadata
	vector   []float32
}

// VectorIndex is a fully loaded, immutable index: all chunk payloads plus
// their embeddings. It is built once (by Rebuild or Load) and never mutated,
// so concurrent searches need no locking.
type VectorIndex struct {
	dimensions int
	entries    []indexEntry
}

// Search returns the k nearest entries to query by inner product, best first.
// Ties keep insertion order. k values larger than the index are clamped.
func (ix *VectorIndex) Search(ctx context.Context, query []float32, k int) ([]SearchHit, error) {
	if len(query) != ix.dimensions {
		return nil, fmt.Errorf("query dimension mismatch: got %d, expected %d", len(query), ix.dimensions)
	}
	if k <= 0 || len(ix.entries) == 0 {
		return nil, nil
	}
	type scored struct {
		pos   int
		score float64
	}
	scores := make([]scored, len(ix.entries))
	for i, e := range ix.entries {
		scores[i] = scored{pos: i, score: utils.DotProduct(query, e.vector)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if k > len(scores) {
		k = len(scores)
	}
	hits := make([]SearchHit, k)
	for i := 0; i < k; i++ {
		e := ix.entries[scores[i].pos]
		hits[i] = SearchHit{Content: e.content, Metadata: e.metadata, Score: scores[i].score}
	}
	return hits, nil
}

// Size returns the number of indexed chunks.
func (ix *VectorIndex) Size() int {
	return len(ix.entries)
}

// Dimensions returns the embedding dimensionality.
func (ix *VectorIndex) Dimensions() int {
	return ix.dimensions
}

// SourceCount returns the number of distinct source documents in the index.
func (ix *VectorIndex) SourceCount() int {
	seen := make(map[string]struct{})
	for _, e := range ix.entries {
		seen[e.metadata.Source] = struct{}{}
	}
	return len(seen)
}
