// File path: internal/llm/openai.go
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/openclaw/mission-control/internal/common"
)

type openAIProvider struct {
	client openai.Client
	model  string
}

func newOpenAIProvider(apiKey string) *openAIProvider {
	model := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL"))
	if model == "" {
		model = "gpt-4o"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
		common.Logger().Info("llm: using custom openai endpoint", "endpoint", endpoint)
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	common.Logger().Info("llm: openai provider configured", "model", model)
	return &openAIProvider{client: openai.NewClient(opts...), model: model}
}

func (o *openAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	logger := common.Logger()
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	logger.Debug("llm: chat completion request", "model", o.model, "messages", len(messages))
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *openAIProvider) Name() string {
	return "openai"
}
