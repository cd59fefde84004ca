// File path: internal/sqlite/work.go
package sqlite

import (
	"context"
	"fmt"
)

// ListWork returns every work artifact, newest first.
func (s *Store) ListWork(ctx context.Context) ([]Work, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	work := []Work{}
	if err := s.db.SelectContext(ctx, &work, `SELECT * FROM agent_work ORDER BY created_at DESC, rowid DESC`); err != nil {
		return nil, fmt.Errorf("select work: %w", err)
	}
	return work, nil
}

// InsertWork appends one work artifact row.
func (s *Store) InsertWork(ctx context.Context, work Work) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO agent_work (id, agent_id, folder_path, file_name, content) VALUES (?, ?, ?, ?, ?)`,
		work.ID, work.AgentID, work.FolderPath, work.FileName, work.Content)
	if err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return checkAffected(result, "insert work")
}
