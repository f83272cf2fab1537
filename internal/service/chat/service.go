// Package chat answers farmers' questions through the configured LLM provider.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

// MaxMessageLength is the longest accepted prompt, in characters.
const MaxMessageLength = 4000

const systemPrompt = `You are Krishi Sathi, an agricultural assistant for Indian farmers.
Answer questions about crops, soil, irrigation, pests, plant diseases, fertilizers, weather,
market prices and government subsidy schemes. Give practical, concise steps a smallholder can
follow. Prefer low-cost and organic remedies where they work, and name chemical treatments
with their safe dosage when they are needed. If a question is not about farming, say briefly
that you can only help with agriculture. Reply in the language the question was asked in.`

type messageRepo interface {
	Create(ctx context.Context, m domain.ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ChatMessage, error)
}

type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Service runs the assistant.
type Service struct {
	log      *slog.Logger
	messages messageRepo
	llm      completer
	now      func() time.Time
}

// NewService creates a new chat service.
func NewService(logger *slog.Logger, messages messageRepo, llm completer) *Service {
	return &Service{
		log:      logger.With("service", "chat"),
		messages: messages,
		llm:      llm,
		now:      time.Now,
	}
}

// Ask sends message to the LLM and stores the exchange.
func (s *Service) Ask(ctx context.Context, message string) (*domain.ChatMessage, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	prompt := strings.TrimSpace(message)
	if prompt == "" {
		return nil, domain.ErrEmptyMessage
	}
	if utf8.RuneCountInString(prompt) > MaxMessageLength {
		return nil, domain.NewValidationError("message", fmt.Sprintf("max %d characters", MaxMessageLength))
	}

	start := time.Now()
	answer, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("chat.Ask: %w", err)
	}

	msg := domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    caller.ID,
		Prompt:    prompt,
		Answer:    answer,
		CreatedAt: s.now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("chat.Ask: %w", err)
	}

	s.log.InfoContext(ctx, "chat answered",
		slog.String("user_id", caller.ID.String()),
		slog.Int("prompt_len", len(prompt)),
		slog.Duration("duration", time.Since(start)),
	)
	return &msg, nil
}

// History returns the caller's exchanges, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]domain.ChatMessage, error) {
	caller := workflow.CallerFromCtx(ctx)
	if caller.ID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.messages.ListByUser(ctx, caller.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("chat.History: %w", err)
	}
	return items, nil
}
