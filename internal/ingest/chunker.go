// Package ingest turns corpus documents into an indexed knowledge base:
// splitting, sanitization, embedding and the atomic store rebuild.
package ingest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SolarisSy/iast/internal/models"
)

// separators ordered from the largest semantic boundary down. The splitter
// tries each one before hard-cutting at the size limit.
var separators = []string{"\n\n", "\n", ". ", " "}

// Chunker splits documents into overlapping character windows.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker builds a chunker. size defaults to 1000 and overlap to 200; an
// overlap as large as the size is clamped down to keep the cursor advancing.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 {
		overlap = 200
	}
	if overlap >= size {
		overlap = size / 2
	}
	return &Chunker{size: size, overlap: overlap}
}

// Split chunks every document, preserving source attribution and the running
// position of each window inside its document. Empty chunks are not filtered
// here, that is the sanitizer's job.
func (c *Chunker) Split(docs []models.Document) []models.Chunk {
	var chunks []models.Chunk
	for _, doc := range docs {
		for i, piece := range c.splitText(doc.Content) {
			chunks = append(chunks, models.Chunk{
				ID:      uuid.NewString(),
				Content: piece,
				Metadata: models.ChunkMetadata{
					Source:     doc.SourcePath,
					Loc:        fmt.Sprintf(`{"chunk":%d}`, i),
					ChunkIndex: len(chunks),
				},
			})
		}
	}
	return chunks
}

// splitText walks the text with a window of at most size runes, preferring to
// end each window on a paragraph, line, sentence or word boundary. Every rune
// of the input is covered by at least one window.
func (c *Chunker) splitText(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= c.size {
		return []string{text}
	}

	var pieces []string
	start := 0
	for start < len(runes) {
		end := start + c.size
		if end >= len(runes) {
			pieces = append(pieces, string(runes[start:]))
			break
		}
		cut := c.boundary(runes, start, end)
		pieces = append(pieces, string(runes[start:cut]))

		next := cut - c.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}
	return pieces
}

// boundary finds the best cut point in (start, end], scanning backwards for
// the largest separator. A boundary in the first half of the window is worse
// than a hard cut, so those are ignored.
func (c *Chunker) boundary(runes []rune, start, end int) int {
	window := string(runes[start:end])
	min := (end - start) / 2
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		cut := idx + len(sep)
		if runeLen(window[:cut]) > min {
			return start + runeLen(window[:cut])
		}
	}
	return end
}

func runeLen(s string) int {
	return len([]rune(s))
}
