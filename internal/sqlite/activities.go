// File path: internal/sqlite/activities.go
package sqlite

import (
	"context"
	"fmt"
)

const activityListLimit = 50

// ListActivities returns the most recent activity log rows, newest first,
// capped at 50, each decorated with the owning agent's display name via a
// soft left join. Timestamp ties fall back to insertion order.
func (s *Store) ListActivities(ctx context.Context) ([]ActivityWithAgent, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	activities := []ActivityWithAgent{}
	if err := s.db.SelectContext(ctx, &activities, `SELECT a.*, ag.name AS agent_name
                FROM agent_activities a
                LEFT JOIN agents ag ON ag.id = a.agent_id
                ORDER BY a.timestamp DESC, a.rowid DESC
                LIMIT ?`, activityListLimit); err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	return activities, nil
}

// InsertActivity appends one activity log row. The log is append-only; there
// is no update or delete path.
func (s *Store) InsertActivity(ctx context.Context, activity Activity) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO agent_activities (id, agent_id, activity, status) VALUES (?, ?, ?, ?)`,
		activity.ID, activity.AgentID, activity.Activity, activity.Status)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return checkAffected(result, "insert activity")
}
