// File path: internal/sqlite/boardroom_test.go
package sqlite

import (
	"context"
	"fmt"
	"testing"
)

func countRows(t *testing.T, store *Store, query string, args ...interface{}) int {
	t.Helper()
	var count int
	if err := store.DB().GetContext(context.Background(), &count, query, args...); err != nil {
		t.Fatalf("count query: %v", err)
	}
	return count
}

func TestDeleteBoardroomSessionCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := BoardroomSession{ID: "sess-1", Title: "Q3 review", Date: "2026-08-28", Time: "09:00"}
	if err := store.UpsertBoardroomSession(ctx, session); err != nil {
		t.Fatalf("upsert session: %v", err)
	}
	for i := 0; i < 3; i++ {
		message := BoardroomMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			SessionID: "sess-1",
			Role:      "agent",
			Name:      "Scout",
			Content:   fmt.Sprintf("point %d", i),
		}
		if err := store.InsertBoardroomMessage(ctx, message); err != nil {
			t.Fatalf("insert message: %v", err)
		}
	}
	sessID := "sess-1"
	task := BoardroomTask{ID: "task-1", SessionID: &sessID, Text: "follow up"}
	if err := store.UpsertBoardroomTask(ctx, task); err != nil {
		t.Fatalf("upsert task: %v", err)
	}

	if err := store.DeleteBoardroomSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if n := countRows(t, store, `SELECT COUNT(*) FROM boardroom_messages WHERE session_id = ?`, "sess-1"); n != 0 {
		t.Fatalf("messages should cascade with session, %d left", n)
	}
	if n := countRows(t, store, `SELECT COUNT(*) FROM boardroom_tasks WHERE session_id = ?`, "sess-1"); n != 0 {
		t.Fatalf("tasks should cascade with session, %d left", n)
	}
}

func TestBoardroomMessagesAscending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := BoardroomSession{ID: "sess-1", Title: "Standup"}
	if err := store.UpsertBoardroomSession(ctx, session); err != nil {
		t.Fatalf("upsert session: %v", err)
	}
	for i := 0; i < 5; i++ {
		message := BoardroomMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			SessionID: "sess-1",
			Content:   fmt.Sprintf("line %d", i),
		}
		if err := store.InsertBoardroomMessage(ctx, message); err != nil {
			t.Fatalf("insert message: %v", err)
		}
	}
	messages, err := store.ListBoardroomMessages(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(messages))
	}
	for i, message := range messages {
		if message.Content != fmt.Sprintf("line %d", i) {
			t.Fatalf("messages out of insertion order at %d: %q", i, message.Content)
		}
	}
	for i := 1; i < len(messages); i++ {
		if messages[i-1].Timestamp > messages[i].Timestamp {
			t.Fatalf("timestamps not ascending at %d", i)
		}
	}
}

func TestBoardroomTaskCompletedRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := BoardroomTask{ID: "task-1", Text: "follow up", Completed: true}
	if err := store.UpsertBoardroomTask(ctx, task); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	tasks, err := store.ListBoardroomTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Fatalf("completed flag lost: %+v", tasks)
	}
	if tasks[0].SessionID != nil {
		t.Fatalf("detached task should have null session, got %v", *tasks[0].SessionID)
	}

	task.Completed = false
	if err := store.UpsertBoardroomTask(ctx, task); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	tasks, err = store.ListBoardroomTasks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks[0].Completed {
		t.Fatal("completed flag should round-trip back to false")
	}
}

func TestDeleteBoardroomTaskIdempotent(t *testing.T) {
	store := newTestStore(t)
	if err := store.DeleteBoardroomTask(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of missing task should succeed, got %v", err)
	}
}
