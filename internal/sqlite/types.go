// File path: internal/sqlite/types.go
package sqlite

// Agent is a fleet member. parent_id informally references another agent; the
// single coordinator agent is the one without a parent.
type Agent struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Role          string     `db:"role" json:"role"`
	ParentID      *string    `db:"parent_id" json:"parent_id"`
	Status        string     `db:"status" json:"status"`
	Capabilities  StringList `db:"capabilities" json:"capabilities"`
	AccessScope   string     `db:"access_scope" json:"access_scope"`
	APIProviderID *string    `db:"api_provider_id" json:"api_provider_id"`
	Instructions  *string    `db:"instructions" json:"instructions"`
}

// Job is inert schedule metadata; nothing in this service executes it.
type Job struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	AgentIDs      StringList `db:"agent_ids" json:"agent_ids"`
	Schedule      string     `db:"schedule" json:"schedule"`
	LastRun       *string    `db:"last_run" json:"last_run"`
	Status        string     `db:"status" json:"status"`
	Cost          float64    `db:"cost" json:"cost"`
	APIProviderID *string    `db:"api_provider_id" json:"api_provider_id"`
}

type APIProvider struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	ProviderType string  `db:"provider_type" json:"provider_type"`
	APIKey       string  `db:"api_key" json:"api_key"`
	Version      *string `db:"version" json:"version"`
	IsActive     bool    `db:"is_active" json:"is_active"`
}

type Activity struct {
	ID        string `db:"id" json:"id"`
	AgentID   string `db:"agent_id" json:"agent_id"`
	Activity  string `db:"activity" json:"activity"`
	Status    string `db:"status" json:"status"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

// ActivityWithAgent decorates an activity with the agent display name. The
// join fails soft: a missing agent yields a null name, not a dropped row.
type ActivityWithAgent struct {
	Activity
	AgentName *string `db:"agent_name" json:"agent_name"`
}

type Work struct {
	ID         string `db:"id" json:"id"`
	AgentID    string `db:"agent_id" json:"agent_id"`
	FolderPath string `db:"folder_path" json:"folder_path"`
	FileName   string `db:"file_name" json:"file_name"`
	Content    string `db:"content" json:"content"`
	CreatedAt  string `db:"created_at" json:"created_at"`
}

type IntelItem struct {
	ID        string     `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Summary   string     `db:"summary" json:"summary"`
	Category  string     `db:"category" json:"category"`
	AgentIDs  StringList `db:"agent_ids" json:"agent_ids"`
	CreatedAt string     `db:"created_at" json:"created_at"`
}

type Note struct {
	ID        string `db:"id" json:"id"`
	Content   string `db:"content" json:"content"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type BoardroomSession struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type BoardroomMessage struct {
	ID        string `db:"id" json:"id"`
	SessionID string `db:"session_id" json:"session_id"`
	Role      string `db:"role" json:"role"`
	Name      string `db:"name" json:"name"`
	Content   string `db:"content" json:"content"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

type BoardroomTask struct {
	ID        string  `db:"id" json:"id"`
	SessionID *string `db:"session_id" json:"session_id"`
	Text      string  `db:"text" json:"text"`
	Completed bool    `db:"completed" json:"completed"`
}

// Conversation.last_message is a derived cache of the newest message content;
// message writes and bulk deletes maintain it transactionally.
type Conversation struct {
	ID          string `db:"id" json:"id"`
	AgentID     string `db:"agent_id" json:"agent_id"`
	LastMessage string `db:"last_message" json:"last_message"`
	UpdatedAt   string `db:"updated_at" json:"updated_at"`
}

type ConversationWithAgent struct {
	Conversation
	AgentName *string `db:"agent_name" json:"agent_name"`
}

type Message struct {
	ID             string `db:"id" json:"id"`
	ConversationID string `db:"conversation_id" json:"conversation_id"`
	AgentID        string `db:"agent_id" json:"agent_id"`
	Role           string `db:"role" json:"role"`
	Content        string `db:"content" json:"content"`
	Timestamp      string `db:"timestamp" json:"timestamp"`
}

type TelemetryEvent struct {
	ID         string  `db:"id" json:"id"`
	Provider   string  `db:"provider" json:"provider"`
	Model      *string `db:"model" json:"model"`
	TokensUsed int64   `db:"tokens_used" json:"tokens_used"`
	Cost       float64 `db:"cost" json:"cost"`
	Timestamp  string  `db:"timestamp" json:"timestamp"`
}

// ProviderCost is the per-provider rollup served by /api/telemetry/summary.
type ProviderCost struct {
	Provider    string  `db:"provider" json:"provider"`
	TotalCost   float64 `db:"total_cost" json:"total_cost"`
	TotalTokens int64   `db:"total_tokens" json:"total_tokens"`
	Events      int64   `db:"events" json:"events"`
}

// DailyUsage is the per-day rollup served by /api/telemetry/usage.
type DailyUsage struct {
	Day         string  `db:"day" json:"day"`
	TotalCost   float64 `db:"total_cost" json:"total_cost"`
	TotalTokens int64   `db:"total_tokens" json:"total_tokens"`
	Events      int64   `db:"events" json:"events"`
}
