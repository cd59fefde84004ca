// File path: internal/sqlite/conversations.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// millisecond precision so updated_at visibly advances between writes that
// land inside the same second
const nowMillis = `strftime('%Y-%m-%d %H:%M:%f', 'now')`

// ListConversations returns every conversation, most recently updated first,
// decorated with the agent display name via a soft left join. agent_id is not
// an enforced foreign key: a conversation may outlive its agent, in which
// case agent_name is null.
func (s *Store) ListConversations(ctx context.Context) ([]ConversationWithAgent, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	conversations := []ConversationWithAgent{}
	if err := s.db.SelectContext(ctx, &conversations, `SELECT c.*, ag.name AS agent_name
                FROM conversations c
                LEFT JOIN agents ag ON ag.id = c.agent_id
                ORDER BY c.updated_at DESC, c.rowid DESC`); err != nil {
		return nil, fmt.Errorf("select conversations: %w", err)
	}
	return conversations, nil
}

// UpsertConversation inserts or replaces a conversation keyed by id.
func (s *Store) UpsertConversation(ctx context.Context, conversation Conversation) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO conversations (id, agent_id, last_message)
                VALUES (?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        agent_id=excluded.agent_id,
                        last_message=excluded.last_message,
                        updated_at=`+nowMillis,
		conversation.ID, conversation.AgentID, conversation.LastMessage)
	if err != nil {
		return fmt.Errorf("upsert conversation: %w", err)
	}
	return checkAffected(result, "upsert conversation")
}

// DeleteConversation removes a conversation; its messages cascade away.
func (s *Store) DeleteConversation(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

// GetConversation fetches a single conversation row.
func (s *Store) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	var conversation Conversation
	if err := s.db.GetContext(ctx, &conversation, `SELECT * FROM conversations WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListMessages returns a conversation's messages in ascending timestamp
// order, ties broken by insertion order.
func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	messages := []Message{}
	if err := s.db.SelectContext(ctx, &messages, `SELECT * FROM messages
                WHERE conversation_id = ?
                ORDER BY timestamp ASC, rowid ASC`, conversationID); err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	return messages, nil
}

// InsertMessage appends a message and maintains the parent conversation's
// derived last_message/updated_at cache in the same transaction, so the two
// can never drift apart.
func (s *Store) InsertMessage(ctx context.Context, message Message) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin insert message: %w", err)
	}
	result, err := tx.ExecContext(ctx, `INSERT INTO messages (id, conversation_id, agent_id, role, content) VALUES (?, ?, ?, ?, ?)`,
		message.ID, message.ConversationID, message.AgentID, message.Role, message.Content)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert message: %w", err)
	}
	if err := checkAffected(result, "insert message"); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE conversations SET last_message = ?, updated_at = `+nowMillis+` WHERE id = ?`,
		message.Content, message.ConversationID); err != nil {
		tx.Rollback()
		return fmt.Errorf("update conversation cache: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert message: %w", err)
	}
	return nil
}

// DeleteMessages removes every message in a conversation without removing the
// conversation itself, resetting the derived last_message cache in the same
// transaction.
func (s *Store) DeleteMessages(ctx context.Context, conversationID string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE conversation_id = ?`, conversationID); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE conversations SET last_message = '', updated_at = `+nowMillis+` WHERE id = ?`,
		conversationID); err != nil {
		tx.Rollback()
		return fmt.Errorf("reset conversation cache: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete messages: %w", err)
	}
	return nil
}
