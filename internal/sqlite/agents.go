// File path: internal/sqlite/agents.go
package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// updatePolicy declares how one column behaves when an upsert hits an
// existing row: overwrite unconditionally, or coalesce so an absent incoming
// value preserves the stored one.
type updatePolicy struct {
	column   string
	coalesce bool
}

// agentUpdatePolicies is the per-field policy map for the agents table.
// instructions is the single coalesced field in the system: a null incoming
// value keeps the previously stored instructions instead of clearing them.
var agentUpdatePolicies = []updatePolicy{
	{column: "name"},
	{column: "role"},
	{column: "parent_id"},
	{column: "status"},
	{column: "capabilities"},
	{column: "access_scope"},
	{column: "api_provider_id"},
	{column: "instructions", coalesce: true},
}

func conflictClause(table string, policies []updatePolicy) string {
	clauses := make([]string, 0, len(policies))
	for _, p := range policies {
		if p.coalesce {
			clauses = append(clauses, fmt.Sprintf("%s=COALESCE(excluded.%s, %s.%s)", p.column, p.column, table, p.column))
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s=excluded.%s", p.column, p.column))
	}
	return strings.Join(clauses, ", ")
}

// ListAgents returns every agent in natural order.
func (s *Store) ListAgents(ctx context.Context) ([]Agent, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	agents := []Agent{}
	if err := s.db.SelectContext(ctx, &agents, `SELECT * FROM agents`); err != nil {
		return nil, fmt.Errorf("select agents: %w", err)
	}
	return agents, nil
}

// UpsertAgent inserts or replaces an agent keyed by its client-supplied id.
func (s *Store) UpsertAgent(ctx context.Context, agent Agent) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO agents (id, name, role, parent_id, status, capabilities, access_scope, api_provider_id, instructions)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET %s`, conflictClause("agents", agentUpdatePolicies))
	result, err := s.db.ExecContext(ctx, query,
		agent.ID, agent.Name, agent.Role, agent.ParentID, agent.Status,
		agent.Capabilities, agent.AccessScope, agent.APIProviderID, agent.Instructions)
	if err != nil {
		return fmt.Errorf("upsert agent: %w", err)
	}
	return checkAffected(result, "upsert agent")
}

// DeleteAgent removes an agent; deleting an unknown id is a no-op.
func (s *Store) DeleteAgent(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM agents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}

// AgentCount reports the stored row count for one agent id.
func (s *Store) AgentCount(ctx context.Context, id string) (int, error) {
	if err := s.ensureReady(); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM agents WHERE id = ?`, id); err != nil {
		return 0, fmt.Errorf("count agents: %w", err)
	}
	return count, nil
}
