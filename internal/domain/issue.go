package domain

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a crop-issue report created by a farmer.
type Issue struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	CropType    *string
	Status      IssueStatus
	Attachments []string
	Replies     []Reply
	CreatedAt   time.Time
	ResolvedAt  *time.Time
	UpdatedAt   time.Time
}

// Reply is one entry of an issue's append-only thread.
type Reply struct {
	Message    string     `json:"message"`
	SenderType SenderType `json:"senderType"`
	AuthorID   uuid.UUID  `json:"authorId"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// IssueFilter narrows issue listings.
type IssueFilter struct {
	OwnerID *uuid.UUID
	Status  *IssueStatus
	Limit   int
	Offset  int
}
