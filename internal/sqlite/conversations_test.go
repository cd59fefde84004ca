// File path: internal/sqlite/conversations_test.go
package sqlite

import (
	"context"
	"fmt"
	"testing"
)

func seedConversation(t *testing.T, store *Store, id string) {
	t.Helper()
	conversation := Conversation{ID: id, AgentID: "agent-1"}
	if err := store.UpsertConversation(context.Background(), conversation); err != nil {
		t.Fatalf("seed conversation: %v", err)
	}
}

func TestInsertMessageMaintainsLastMessage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedConversation(t, store, "conv-1")

	before, err := store.GetConversation(ctx, "conv-1")
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}

	message := Message{ID: "msg-1", ConversationID: "conv-1", AgentID: "agent-1", Role: "user", Content: "status report please"}
	if err := store.InsertMessage(ctx, message); err != nil {
		t.Fatalf("insert message: %v", err)
	}

	after, err := store.GetConversation(ctx, "conv-1")
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}
	if after.LastMessage != "status report please" {
		t.Fatalf("last_message not maintained: %q", after.LastMessage)
	}
	if after.UpdatedAt < before.UpdatedAt {
		t.Fatalf("updated_at went backwards: %q -> %q", before.UpdatedAt, after.UpdatedAt)
	}

	second := Message{ID: "msg-2", ConversationID: "conv-1", Role: "agent", Content: "all systems nominal"}
	if err := store.InsertMessage(ctx, second); err != nil {
		t.Fatalf("insert second message: %v", err)
	}
	final, err := store.GetConversation(ctx, "conv-1")
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}
	if final.LastMessage != "all systems nominal" {
		t.Fatalf("last_message should track the newest message, got %q", final.LastMessage)
	}
}

func TestDeleteMessagesResetsLastMessage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedConversation(t, store, "conv-1")

	for i := 0; i < 3; i++ {
		message := Message{ID: fmt.Sprintf("msg-%d", i), ConversationID: "conv-1", Content: fmt.Sprintf("m%d", i)}
		if err := store.InsertMessage(ctx, message); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := store.DeleteMessages(ctx, "conv-1"); err != nil {
		t.Fatalf("delete messages: %v", err)
	}

	conversation, err := store.GetConversation(ctx, "conv-1")
	if err != nil {
		t.Fatalf("conversation must survive a bulk message delete: %v", err)
	}
	if conversation.LastMessage != "" {
		t.Fatalf("last_message should reset to empty, got %q", conversation.LastMessage)
	}
	if n := countRows(t, store, `SELECT COUNT(*) FROM messages WHERE conversation_id = ?`, "conv-1"); n != 0 {
		t.Fatalf("expected no messages, got %d", n)
	}
}

func TestDeleteConversationCascadesMessages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedConversation(t, store, "conv-1")

	message := Message{ID: "msg-1", ConversationID: "conv-1", Content: "hello"}
	if err := store.InsertMessage(ctx, message); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.DeleteConversation(ctx, "conv-1"); err != nil {
		t.Fatalf("delete conversation: %v", err)
	}
	if n := countRows(t, store, `SELECT COUNT(*) FROM messages WHERE conversation_id = ?`, "conv-1"); n != 0 {
		t.Fatalf("messages should cascade with conversation, %d left", n)
	}
}

func TestListConversationsJoinFailsSoft(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertAgent(ctx, Agent{ID: "agent-1", Name: "Scout", Role: "researcher", Status: "idle", AccessScope: "read-only"}); err != nil {
		t.Fatalf("upsert agent: %v", err)
	}
	seedConversation(t, store, "conv-known")
	if err := store.UpsertConversation(ctx, Conversation{ID: "conv-orphan", AgentID: "ghost"}); err != nil {
		t.Fatalf("upsert orphan conversation: %v", err)
	}

	conversations, err := store.ListConversations(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected both conversations, got %d", len(conversations))
	}
	byID := make(map[string]ConversationWithAgent, len(conversations))
	for _, c := range conversations {
		byID[c.ID] = c
	}
	if known := byID["conv-known"]; known.AgentName == nil || *known.AgentName != "Scout" {
		t.Fatalf("expected joined name for known agent, got %v", known.AgentName)
	}
	if orphan := byID["conv-orphan"]; orphan.AgentName != nil {
		t.Fatalf("orphan conversation should have null agent name, got %q", *orphan.AgentName)
	}
}

func TestListMessagesAscending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedConversation(t, store, "conv-1")

	for i := 0; i < 4; i++ {
		message := Message{ID: fmt.Sprintf("msg-%d", i), ConversationID: "conv-1", Content: fmt.Sprintf("m%d", i)}
		if err := store.InsertMessage(ctx, message); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	messages, err := store.ListMessages(ctx, "conv-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, message := range messages {
		if message.Content != fmt.Sprintf("m%d", i) {
			t.Fatalf("messages out of order at %d: %q", i, message.Content)
		}
	}
}
