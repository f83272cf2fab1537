// Package llm adapts hosted chat-completion APIs to a single Complete call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
)

const service = "chat"

// ErrNotConfigured is returned by the disabled client when no API key is set.
var ErrNotConfigured = errors.New("chat provider not configured")

// Client is a chat-completion backend.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// New builds the client selected by cfg.Provider. Without an API key it
// returns a client that fails every call with an upstream error.
func New(cfg config.ChatConfig, logger *slog.Logger) (Client, error) {
	log := logger.With("adapter", "llm", slog.String("provider", cfg.Provider))

	if !cfg.Enabled() {
		log.Warn("chat api key not set; chat requests will fail")
		return disabled{}, nil
	}

	switch cfg.Provider {
	case config.ChatProviderAnthropic:
		return NewAnthropic(cfg, log), nil
	case config.ChatProviderOpenAI:
		return NewOpenAI(cfg, log), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

type disabled struct{}

func (disabled) Complete(context.Context, string, string) (string, error) {
	return "", domain.NewUpstreamError(service, ErrNotConfigured)
}

func answerOrError(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewUpstreamError(service, errors.New("empty completion"))
	}
	return text, nil
}
