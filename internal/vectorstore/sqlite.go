package vectorstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SolarisSy/iast/internal/models"
)

// chunkRow mirrors one persisted chunk: content plus its flat metadata.
type chunkRow struct {
	ID      string
	Content string
	Meta    models.ChunkMetadata
}

func openChunkDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS chunks (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		source TEXT NOT NULL,
		loc TEXT NOT NULL,
		chunk_index INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_chunks_chunk_index ON chunks(chunk_index);
	`
	_, err := db.Exec(schema)
	return err
}

// writeChunks inserts all chunks in one transaction.
func writeChunks(ctx context.Context, db *sql.DB, chunks []models.Chunk) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin chunk insert: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks (id, content, source, loc, chunk_index) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare chunk insert: %w", err)
	}
	defer stmt.Close()
	for _, ch := range chunks {
		if _, err := stmt.ExecContext(ctx, ch.ID, ch.Content,
			ch.Metadata.Source, ch.Metadata.Loc, ch.Metadata.ChunkIndex); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert chunk %d: %w", ch.Metadata.ChunkIndex, err)
		}
	}
	return tx.Commit()
}

// readChunks returns all chunks ordered by chunk_index.
func readChunks(ctx context.Context, db *sql.DB) ([]chunkRow, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, content, source, loc, chunk_index FROM chunks ORDER BY chunk_index`)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()
	var out []chunkRow
	for rows.Next() {
		var r chunkRow
		if err := rows.Scan(&r.ID, &r.Content, &r.Meta.Source, &r.Meta.Loc, &r.Meta.ChunkIndex); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
