// Package provider defines the external embedding and completion provider
// contracts and an OpenAI-compatible HTTP client implementing both.
package provider

import "context"

// Message is a single chat message sent to the completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles understood by OpenAI-compatible chat endpoints.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionOptions control sampling for a single completion call.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

// Embedder converts text into vector embeddings. Returned vectors are
// normalized to unit L2 length so inner product equals cosine similarity.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer produces a chat completion for the given messages.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
}
