// File path: internal/llm/llm.go

// Package llm supplies the chat completion provider behind the Mission
// Control assistant and boardroom summary endpoints.
package llm

import (
	"context"
	"os"
	"strings"

	"github.com/openclaw/mission-control/internal/common"
)

// Message is one turn of a chat exchange.
type Message struct {
	Role    string
	Content string
}

// Provider produces chat completions.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// NewProvider selects the OpenAI-backed provider when OPENAI_API_KEY is set
// and otherwise falls back to a deterministic local stub, so the assistant
// endpoints degrade instead of failing outright.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey != "" {
		logger.Info("llm: openai provider selected")
		return newOpenAIProvider(apiKey)
	}
	logger.Warn("llm: OPENAI_API_KEY not set; falling back to local provider")
	return NewLocalProvider()
}
