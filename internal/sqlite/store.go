// File path: internal/sqlite/store.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var errNilStore = errors.New("sqlite store not initialised")

// Store wraps a pooled sqlx.DB connection to the mission control database.
// All entity tables live in the single file; the schema is created
// idempotently on open.
type Store struct {
	db *sqlx.DB
}

// Open constructs a Store backed by the SQLite database at the provided path.
func Open(path string) (*Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg.Path = trimmed
	}
	return OpenWithConfig(cfg)
}

// OpenWithConfig constructs a Store using the provided configuration.
func OpenWithConfig(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	busy := int(cfg.BusyTimeout / time.Millisecond)
	if busy <= 0 {
		busy = 5000
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", abs, busy)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingTimeout := cfg.BusyTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying sqlx.DB for advanced callers.
func (s *Store) DB() *sqlx.DB {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *Store) ensureReady() error {
	if s == nil || s.db == nil {
		return errNilStore
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	// journal_mode cannot change inside a transaction, so pragmas run on the
	// bare connection first.
	for _, pragma := range pragmaStatements {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("apply pragma: %w", err)
		}
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// checkAffected enforces the upsert contract: an insert-or-update keyed by id
// always touches exactly one row, so a zero-row outcome is a persistence
// fault, not a silent no-op.
func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: upsert affected no rows", op)
	}
	return nil
}

var pragmaStatements = []string{
	`PRAGMA journal_mode = WAL;`,
	`PRAGMA foreign_keys = ON;`,
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS agents (
                id TEXT PRIMARY KEY,
                name TEXT NOT NULL,
                role TEXT NOT NULL,
                parent_id TEXT,
                status TEXT DEFAULT 'idle',
                capabilities TEXT,
                access_scope TEXT DEFAULT 'read-only',
                api_provider_id TEXT,
                instructions TEXT
        );`,
	`CREATE TABLE IF NOT EXISTS jobs (
                id TEXT PRIMARY KEY,
                name TEXT NOT NULL,
                agent_ids TEXT,
                schedule TEXT,
                last_run TEXT,
                status TEXT DEFAULT 'active',
                cost REAL DEFAULT 0,
                api_provider_id TEXT
        );`,
	`CREATE TABLE IF NOT EXISTS api_providers (
                id TEXT PRIMARY KEY,
                name TEXT NOT NULL,
                provider_type TEXT NOT NULL,
                api_key TEXT NOT NULL,
                version TEXT,
                is_active INTEGER DEFAULT 1
        );`,
	`CREATE TABLE IF NOT EXISTS agent_activities (
                id TEXT PRIMARY KEY,
                agent_id TEXT NOT NULL,
                activity TEXT NOT NULL,
                status TEXT,
                timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS agent_work (
                id TEXT PRIMARY KEY,
                agent_id TEXT NOT NULL,
                folder_path TEXT NOT NULL,
                file_name TEXT NOT NULL,
                content TEXT,
                created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS intel (
                id TEXT PRIMARY KEY,
                title TEXT NOT NULL,
                summary TEXT,
                category TEXT,
                agent_ids TEXT,
                created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS notes (
                id TEXT PRIMARY KEY,
                content TEXT NOT NULL,
                created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS boardroom_sessions (
                id TEXT PRIMARY KEY,
                title TEXT NOT NULL,
                date TEXT,
                time TEXT,
                created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS boardroom_messages (
                id TEXT PRIMARY KEY,
                session_id TEXT NOT NULL,
                role TEXT,
                name TEXT,
                content TEXT NOT NULL,
                timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
                FOREIGN KEY(session_id) REFERENCES boardroom_sessions(id) ON DELETE CASCADE
        );`,
	`CREATE TABLE IF NOT EXISTS boardroom_tasks (
                id TEXT PRIMARY KEY,
                session_id TEXT,
                text TEXT NOT NULL,
                completed INTEGER DEFAULT 0,
                FOREIGN KEY(session_id) REFERENCES boardroom_sessions(id) ON DELETE CASCADE
        );`,
	`CREATE TABLE IF NOT EXISTS conversations (
                id TEXT PRIMARY KEY,
                agent_id TEXT NOT NULL,
                last_message TEXT,
                updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS messages (
                id TEXT PRIMARY KEY,
                conversation_id TEXT NOT NULL,
                agent_id TEXT,
                role TEXT,
                content TEXT NOT NULL,
                timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
                FOREIGN KEY(conversation_id) REFERENCES conversations(id) ON DELETE CASCADE
        );`,
	`CREATE TABLE IF NOT EXISTS telemetry (
                id TEXT PRIMARY KEY,
                provider TEXT NOT NULL,
                model TEXT,
                tokens_used INTEGER DEFAULT 0,
                cost REAL DEFAULT 0,
                timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE INDEX IF NOT EXISTS idx_activities_timestamp ON agent_activities(timestamp);`,
	`CREATE INDEX IF NOT EXISTS idx_work_created ON agent_work(created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_boardroom_messages_session ON boardroom_messages(session_id, timestamp);`,
	`CREATE INDEX IF NOT EXISTS idx_boardroom_tasks_session ON boardroom_tasks(session_id);`,
	`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, timestamp);`,
	`CREATE INDEX IF NOT EXISTS idx_telemetry_provider ON telemetry(provider);`,
	`CREATE INDEX IF NOT EXISTS idx_telemetry_timestamp ON telemetry(timestamp);`,
}
