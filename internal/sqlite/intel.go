// File path: internal/sqlite/intel.go
package sqlite

import (
	"context"
	"fmt"
)

// ListIntel returns every intel item, newest first.
func (s *Store) ListIntel(ctx context.Context) ([]IntelItem, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	items := []IntelItem{}
	if err := s.db.SelectContext(ctx, &items, `SELECT * FROM intel ORDER BY created_at DESC, rowid DESC`); err != nil {
		return nil, fmt.Errorf("select intel: %w", err)
	}
	return items, nil
}

// UpsertIntel inserts or replaces an intel item keyed by id. created_at keeps
// its original value on conflict.
func (s *Store) UpsertIntel(ctx context.Context, item IntelItem) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO intel (id, title, summary, category, agent_ids)
                VALUES (?, ?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        title=excluded.title,
                        summary=excluded.summary,
                        category=excluded.category,
                        agent_ids=excluded.agent_ids`,
		item.ID, item.Title, item.Summary, item.Category, item.AgentIDs)
	if err != nil {
		return fmt.Errorf("upsert intel: %w", err)
	}
	return checkAffected(result, "upsert intel")
}
