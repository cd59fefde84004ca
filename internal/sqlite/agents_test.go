// File path: internal/sqlite/agents_test.go
package sqlite

import (
	"context"
	"testing"
)

func strptr(s string) *string { return &s }

func TestUpsertAgentReplacesOnSecondCall(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := Agent{
		ID:           "agent-1",
		Name:         "Scout",
		Role:         "researcher",
		Status:       "idle",
		Capabilities: StringList{"search"},
		AccessScope:  "read-only",
	}
	if err := store.UpsertAgent(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.Name = "Scout II"
	second.Status = "online"
	second.Capabilities = StringList{"search", "summarize"}
	second.AccessScope = "draft only"
	if err := store.UpsertAgent(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	agents, err := store.ListAgents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(agents))
	}
	got := agents[0]
	if got.Name != "Scout II" || got.Status != "online" || got.AccessScope != "draft only" {
		t.Fatalf("second call's values not stored: %+v", got)
	}
	if len(got.Capabilities) != 2 || got.Capabilities[1] != "summarize" {
		t.Fatalf("capabilities not replaced: %v", got.Capabilities)
	}
}

func TestUpsertAgentCoalescesInstructions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	agent := Agent{
		ID:           "agent-1",
		Name:         "Scout",
		Role:         "researcher",
		Status:       "idle",
		AccessScope:  "read-only",
		Instructions: strptr("always cite sources"),
	}
	if err := store.UpsertAgent(ctx, agent); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Second call omits instructions: the stored value must survive.
	update := agent
	update.Name = "Scout II"
	update.Instructions = nil
	if err := store.UpsertAgent(ctx, update); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	agents, err := store.ListAgents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("expected one row, got %d", len(agents))
	}
	if agents[0].Name != "Scout II" {
		t.Fatalf("name not overwritten: %q", agents[0].Name)
	}
	if agents[0].Instructions == nil || *agents[0].Instructions != "always cite sources" {
		t.Fatalf("instructions not preserved: %v", agents[0].Instructions)
	}

	// A present incoming value still overwrites.
	update.Instructions = strptr("be brief")
	if err := store.UpsertAgent(ctx, update); err != nil {
		t.Fatalf("third upsert: %v", err)
	}
	agents, err = store.ListAgents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if agents[0].Instructions == nil || *agents[0].Instructions != "be brief" {
		t.Fatalf("instructions not overwritten: %v", agents[0].Instructions)
	}
}

func TestDeleteAgentIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.DeleteAgent(ctx, "never-existed"); err != nil {
		t.Fatalf("delete of missing id should be a no-op, got %v", err)
	}

	agent := Agent{ID: "agent-1", Name: "Scout", Role: "researcher", Status: "idle", AccessScope: "read-only"}
	if err := store.UpsertAgent(ctx, agent); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.DeleteAgent(ctx, "agent-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteAgent(ctx, "agent-1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	count, err := store.AgentCount(ctx, "agent-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 rows after delete, got %d", count)
	}
}
