package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/SolarisSy/iast/pkg/utils"
)

// MockEmbedder is a deterministic embedder for tests and offline runs. The
// same text always maps to the same unit vector, so similarity comparisons
// are stable across processes.
type MockEmbedder struct {
	dimensions int
}

// NewMockEmbedder returns an embedder producing deterministic embeddings of
// the given dimensions (default 64 when non-positive).
func NewMockEmbedder(dimensions int) *MockEmbedder {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &MockEmbedder{dimensions: dimensions}
}

// Embed returns a deterministic unit-normalized embedding derived from the text hash.
func (e *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := int(h.Sum64() % math.MaxInt32)
	emb := make([]float32, e.dimensions)
	for i := range emb {
		emb[i] = float32(math.Sin(float64(seed*(i+1)))*0.1 + 0.01)
	}
	utils.NormalizeL2(emb)
	return emb, nil
}

// EmbedBatch calls Embed for each text.
func (e *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// ScriptedCompleter returns canned replies in sequence. Tests use it to drive
// the chat pipeline without a live provider.
type ScriptedCompleter struct {
	Replies []string
	Err     error
	Calls   [][]Message
	next    int
}

// Complete records the call and returns the next scripted reply. When the
// script is exhausted the last reply repeats.
func (s *ScriptedCompleter) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	s.Calls = append(s.Calls, messages)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Replies) == 0 {
		return "", fmt.Errorf("scripted completer has no replies")
	}
	i := s.next
	if i >= len(s.Replies) {
		i = len(s.Replies) - 1
	}
	s.next++
	return s.Replies[i], nil
}
