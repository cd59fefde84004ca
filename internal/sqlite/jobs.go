// File path: internal/sqlite/jobs.go
package sqlite

import (
	"context"
	"fmt"
)

// ListJobs returns every job in natural order.
func (s *Store) ListJobs(ctx context.Context) ([]Job, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	jobs := []Job{}
	if err := s.db.SelectContext(ctx, &jobs, `SELECT * FROM jobs`); err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	return jobs, nil
}

// UpsertJob inserts or replaces a job keyed by its client-supplied id. Every
// field is last-write-wins on conflict.
func (s *Store) UpsertJob(ctx context.Context, job Job) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO jobs (id, name, agent_ids, schedule, last_run, status, cost, api_provider_id)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        name=excluded.name,
                        agent_ids=excluded.agent_ids,
                        schedule=excluded.schedule,
                        last_run=excluded.last_run,
                        status=excluded.status,
                        cost=excluded.cost,
                        api_provider_id=excluded.api_provider_id`,
		job.ID, job.Name, job.AgentIDs, job.Schedule, job.LastRun, job.Status, job.Cost, job.APIProviderID)
	if err != nil {
		return fmt.Errorf("upsert job: %w", err)
	}
	return checkAffected(result, "upsert job")
}

// DeleteJob removes a job; deleting an unknown id is a no-op.
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
