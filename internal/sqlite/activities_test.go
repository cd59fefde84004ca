// File path: internal/sqlite/activities_test.go
package sqlite

import (
	"context"
	"fmt"
	"testing"
)

func TestListActivitiesLimitAndOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	agent := Agent{ID: "agent-1", Name: "Scout", Role: "researcher", Status: "idle", AccessScope: "read-only"}
	if err := store.UpsertAgent(ctx, agent); err != nil {
		t.Fatalf("upsert agent: %v", err)
	}
	for i := 0; i < 55; i++ {
		activity := Activity{
			ID:       fmt.Sprintf("act-%03d", i),
			AgentID:  "agent-1",
			Activity: fmt.Sprintf("step %d", i),
			Status:   "done",
		}
		if err := store.InsertActivity(ctx, activity); err != nil {
			t.Fatalf("insert activity %d: %v", i, err)
		}
	}

	activities, err := store.ListActivities(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(activities) != 50 {
		t.Fatalf("expected 50 rows, got %d", len(activities))
	}
	for i := 1; i < len(activities); i++ {
		if activities[i-1].Timestamp < activities[i].Timestamp {
			t.Fatalf("timestamps not descending at index %d: %q < %q", i, activities[i-1].Timestamp, activities[i].Timestamp)
		}
	}
	if activities[0].AgentName == nil || *activities[0].AgentName != "Scout" {
		t.Fatalf("expected joined agent name, got %v", activities[0].AgentName)
	}
}

func TestListActivitiesJoinFailsSoft(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	activity := Activity{ID: "act-1", AgentID: "ghost", Activity: "haunting", Status: "done"}
	if err := store.InsertActivity(ctx, activity); err != nil {
		t.Fatalf("insert: %v", err)
	}
	activities, err := store.ListActivities(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("row for unknown agent must not be excluded, got %d rows", len(activities))
	}
	if activities[0].AgentName != nil {
		t.Fatalf("missing agent should yield null name, got %q", *activities[0].AgentName)
	}
}
