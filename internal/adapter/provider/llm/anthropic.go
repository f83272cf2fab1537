package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
)

// Anthropic calls the Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	cfg       config.ChatConfig
	log       *slog.Logger
}

// NewAnthropic creates a Messages API client. Extra options are appended
// after the configured ones.
func NewAnthropic(cfg config.ChatConfig, log *slog.Logger, opts ...option.RequestOption) *Anthropic {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	return &Anthropic{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		cfg:       cfg,
		log:       log,
	}
}

// Complete sends one user turn with the given system prompt.
func (a *Anthropic) Complete(ctx context.Context, system, prompt string) (string, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		a.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(service, err)
	}

	if len(msg.Content) == 0 {
		return "", domain.NewUpstreamError(service, fmt.Errorf("no content blocks"))
	}
	content := msg.Content[0]
	if content.Type != "text" {
		return "", domain.NewUpstreamError(service, fmt.Errorf("unexpected content block type %s", content.Type))
	}

	a.log.DebugContext(ctx, "anthropic response",
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return answerOrError(content.Text)
}
