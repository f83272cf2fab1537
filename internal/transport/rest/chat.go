package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/krishisathi/backend/internal/domain"
)

type chatService interface {
	Ask(ctx context.Context, message string) (*domain.ChatMessage, error)
	History(ctx context.Context, limit, offset int) ([]domain.ChatMessage, error)
}

// ChatHandler serves the assistant.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Ask handles POST /chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	msg, err := h.svc.Ask(r.Context(), req.Message)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChatResponse(msg))
}

// History handles GET /chat/history.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.History(r.Context(), p.Limit, p.Offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, func(m domain.ChatMessage) chatResponse { return toChatResponse(&m) }))
}
