package ingest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SolarisSy/iast/internal/models"
)

// Sanitize drops blank chunks and rebuilds every surviving chunk's metadata
// from scratch into the flat scalar shape the store persists. The chunk index
// is reassigned densely over the survivors so downstream references stay
// contiguous.
//
// A surviving chunk whose content is not valid text aborts the whole run. A
// partially corrupt index is worse than no index, the previous one stays live.
func Sanitize(chunks []models.Chunk) ([]models.Chunk, error) {
	sanitized := make([]models.Chunk, 0, len(chunks))
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk.Content) == "" {
			continue
		}
		if !utf8.ValidString(chunk.Content) {
			return nil, fmt.Errorf("chunk %d from %q holds malformed text, aborting ingestion", i, chunk.Metadata.Source)
		}
		sanitized = append(sanitized, models.Chunk{
			ID:      chunk.ID,
			Content: chunk.Content,
			Metadata: models.ChunkMetadata{
				Source:     chunk.Metadata.Source,
				Loc:        chunk.Metadata.Loc,
				ChunkIndex: len(sanitized),
			},
		})
	}
	return sanitized, nil
}
