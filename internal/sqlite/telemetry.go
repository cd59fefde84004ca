// File path: internal/sqlite/telemetry.go
package sqlite

import (
	"context"
	"fmt"
)

// InsertTelemetry appends one usage event. The telemetry log is append-only.
func (s *Store) InsertTelemetry(ctx context.Context, event TelemetryEvent) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO telemetry (id, provider, model, tokens_used, cost) VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.Provider, event.Model, event.TokensUsed, event.Cost)
	if err != nil {
		return fmt.Errorf("insert telemetry: %w", err)
	}
	return checkAffected(result, "insert telemetry")
}

// TelemetrySummary rolls up total cost and tokens per provider across the
// whole log, most expensive provider first.
func (s *Store) TelemetrySummary(ctx context.Context) ([]ProviderCost, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	summary := []ProviderCost{}
	if err := s.db.SelectContext(ctx, &summary, `SELECT
                        provider,
                        SUM(cost) AS total_cost,
                        SUM(tokens_used) AS total_tokens,
                        COUNT(*) AS events
                FROM telemetry
                GROUP BY provider
                ORDER BY total_cost DESC`); err != nil {
		return nil, fmt.Errorf("select telemetry summary: %w", err)
	}
	return summary, nil
}

// TelemetryUsage rolls up cost and tokens per day over the trailing seven
// days, oldest day first.
func (s *Store) TelemetryUsage(ctx context.Context) ([]DailyUsage, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	usage := []DailyUsage{}
	if err := s.db.SelectContext(ctx, &usage, `SELECT
                        date(timestamp) AS day,
                        SUM(cost) AS total_cost,
                        SUM(tokens_used) AS total_tokens,
                        COUNT(*) AS events
                FROM telemetry
                WHERE timestamp >= datetime('now', '-7 days')
                GROUP BY date(timestamp)
                ORDER BY day ASC`); err != nil {
		return nil, fmt.Errorf("select telemetry usage: %w", err)
	}
	return usage, nil
}
