package ingest

import (
	"testing"

	"github.com/SolarisSy/iast/internal/models"
)

func TestSanitize_DropsBlankChunks(t *testing.T) {
	chunks := []models.Chunk{
		{ID: "1", Content: "válido"},
		{ID: "2", Content: "   \n\t  "},
		{ID: "3", Content: ""},
		{ID: "4", Content: "também válido"},
	}
	got, err := Sanitize(chunks)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d chunks", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "4" {
		t.Errorf("survivors: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestSanitize_DenseReindex(t *testing.T) {
	chunks := []models.Chunk{
		{ID: "1", Content: "um", Metadata: models.ChunkMetadata{ChunkIndex: 7}},
		{ID: "2", Content: " "},
		{ID: "3", Content: "dois", Metadata: models.ChunkMetadata{ChunkIndex: 42}},
		{ID: "4", Content: "três", Metadata: models.ChunkMetadata{ChunkIndex: 42}},
	}
	got, err := Sanitize(chunks)
	if err != nil {
		t.Fatal(err)
	}
	for i, chunk := range got {
		if chunk.Metadata.ChunkIndex != i {
			t.Errorf("chunk %d has index %d", i, chunk.Metadata.ChunkIndex)
		}
	}
}

func TestSanitize_PreservesSourceAndLoc(t *testing.T) {
	got, err := Sanitize([]models.Chunk{{
		ID:      "1",
		Content: "texto",
		Metadata: models.ChunkMetadata{
			Source: "manual.pdf",
			Loc:    `{"pageNumber":3}`,
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Metadata.Source != "manual.pdf" || got[0].Metadata.Loc != `{"pageNumber":3}` {
		t.Errorf("metadata: %+v", got[0].Metadata)
	}
}

func TestSanitize_MalformedContentAborts(t *testing.T) {
	chunks := []models.Chunk{
		{ID: "1", Content: "ok"},
		{ID: "2", Content: string([]byte{0x66, 0xfe, 0xff})},
	}
	if _, err := Sanitize(chunks); err == nil {
		t.Fatal("malformed chunk must abort the run")
	}
}

func TestSanitize_Empty(t *testing.T) {
	got, err := Sanitize(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d chunks", len(got))
	}
}
