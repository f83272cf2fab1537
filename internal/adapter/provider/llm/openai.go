package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
)

// OpenAI calls the Chat Completions API.
type OpenAI struct {
	client openai.Client
	cfg    config.ChatConfig
	log    *slog.Logger
}

// NewOpenAI creates a Chat Completions client. Extra options are appended
// after the configured ones.
func NewOpenAI(cfg config.ChatConfig, log *slog.Logger, opts ...option.RequestOption) *OpenAI {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	return &OpenAI{
		client: openai.NewClient(append(base, opts...)...),
		cfg:    cfg,
		log:    log,
	}
}

// Complete sends a system and a user message.
func (o *OpenAI) Complete(ctx context.Context, system, prompt string) (string, error) {
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(o.cfg.MaxTokens),
	})
	if err != nil {
		o.log.ErrorContext(ctx, "openai request failed", slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(service, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewUpstreamError(service, fmt.Errorf("no choices"))
	}

	o.log.DebugContext(ctx, "openai response",
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)
	return answerOrError(resp.Choices[0].Message.Content)
}
