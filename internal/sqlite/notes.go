// File path: internal/sqlite/notes.go
package sqlite

import (
	"context"
	"fmt"
)

// ListNotes returns every note, newest first.
func (s *Store) ListNotes(ctx context.Context) ([]Note, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	notes := []Note{}
	if err := s.db.SelectContext(ctx, &notes, `SELECT * FROM notes ORDER BY created_at DESC, rowid DESC`); err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	return notes, nil
}

// InsertNote appends one note. Notes are append-only: no update, no delete.
func (s *Store) InsertNote(ctx context.Context, note Note) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO notes (id, content) VALUES (?, ?)`, note.ID, note.Content)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return checkAffected(result, "insert note")
}
