// Package models defines core data structures for documents, chunks, and chat turns.
package models

// Document is a source file loaded from the corpus. Documents are transient:
// they exist only for the duration of an ingestion run.
type Document struct {
	SourcePath string
	Content    string
}

// Chunk is a bounded slice of a document's text, the unit of indexing and
// retrieval. Metadata is only authoritative after sanitization, which rebuilds
// it from scratch.
type Chunk struct {
	ID       string        `json:"id"`
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata is the flat, scalar-only metadata record persisted with each
// indexed chunk. Loc is always a stringified location descriptor, never a
// nested structure: upstream loaders (PDF in particular) attach inconsistent
// metadata shapes that would otherwise corrupt the persisted index.
type ChunkMetadata struct {
	Source     string `json:"source"`
	Loc        string `json:"loc"`
	ChunkIndex int    `json:"chunk_index"`
}

// IngestResult summarizes a completed ingestion run.
type IngestResult struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}
