// File path: internal/sqlite/boardroom.go
package sqlite

import (
	"context"
	"fmt"
)

// ListBoardroomSessions returns every session, newest first.
func (s *Store) ListBoardroomSessions(ctx context.Context) ([]BoardroomSession, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	sessions := []BoardroomSession{}
	if err := s.db.SelectContext(ctx, &sessions, `SELECT * FROM boardroom_sessions ORDER BY created_at DESC, rowid DESC`); err != nil {
		return nil, fmt.Errorf("select boardroom sessions: %w", err)
	}
	return sessions, nil
}

// UpsertBoardroomSession inserts or replaces a session keyed by id.
func (s *Store) UpsertBoardroomSession(ctx context.Context, session BoardroomSession) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO boardroom_sessions (id, title, date, time)
                VALUES (?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        title=excluded.title,
                        date=excluded.date,
                        time=excluded.time`,
		session.ID, session.Title, session.Date, session.Time)
	if err != nil {
		return fmt.Errorf("upsert boardroom session: %w", err)
	}
	return checkAffected(result, "upsert boardroom session")
}

// DeleteBoardroomSession removes a session; messages and tasks referencing it
// cascade away with it.
func (s *Store) DeleteBoardroomSession(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM boardroom_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete boardroom session: %w", err)
	}
	return nil
}

// ListBoardroomMessages returns a session's transcript in ascending timestamp
// order, ties broken by insertion order.
func (s *Store) ListBoardroomMessages(ctx context.Context, sessionID string) ([]BoardroomMessage, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	messages := []BoardroomMessage{}
	if err := s.db.SelectContext(ctx, &messages, `SELECT * FROM boardroom_messages
                WHERE session_id = ?
                ORDER BY timestamp ASC, rowid ASC`, sessionID); err != nil {
		return nil, fmt.Errorf("select boardroom messages: %w", err)
	}
	return messages, nil
}

// InsertBoardroomMessage appends one transcript line to a session.
func (s *Store) InsertBoardroomMessage(ctx context.Context, message BoardroomMessage) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO boardroom_messages (id, session_id, role, name, content) VALUES (?, ?, ?, ?, ?)`,
		message.ID, message.SessionID, message.Role, message.Name, message.Content)
	if err != nil {
		return fmt.Errorf("insert boardroom message: %w", err)
	}
	return checkAffected(result, "insert boardroom message")
}

// ListBoardroomTasks returns every task in natural order.
func (s *Store) ListBoardroomTasks(ctx context.Context) ([]BoardroomTask, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	tasks := []BoardroomTask{}
	if err := s.db.SelectContext(ctx, &tasks, `SELECT * FROM boardroom_tasks`); err != nil {
		return nil, fmt.Errorf("select boardroom tasks: %w", err)
	}
	return tasks, nil
}

// UpsertBoardroomTask inserts or replaces a task keyed by id. completed is
// stored as 0/1 and round-trips losslessly.
func (s *Store) UpsertBoardroomTask(ctx context.Context, task BoardroomTask) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO boardroom_tasks (id, session_id, text, completed)
                VALUES (?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        session_id=excluded.session_id,
                        text=excluded.text,
                        completed=excluded.completed`,
		task.ID, task.SessionID, task.Text, task.Completed)
	if err != nil {
		return fmt.Errorf("upsert boardroom task: %w", err)
	}
	return checkAffected(result, "upsert boardroom task")
}

// DeleteBoardroomTask removes a task; deleting an unknown id is a no-op.
func (s *Store) DeleteBoardroomTask(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM boardroom_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete boardroom task: %w", err)
	}
	return nil
}
