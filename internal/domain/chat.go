package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one prompt/answer exchange with the assistant.
type ChatMessage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Prompt    string
	Answer    string
	CreatedAt time.Time
}
