package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a farmer's subsidy application.
type Application struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	SchemeName    string
	LandArea      float64
	CropType      *string
	Documents     ApplicationDocuments
	Status        ApplicationStatus
	AdminReplies  []string
	SubmittedDate time.Time
	ReviewedDate  *time.Time
	UpdatedAt     time.Time
}

// ApplicationDocuments are the fixed required document slots of an application.
// Each value is a stored-file reference.
type ApplicationDocuments struct {
	IdentityProof string `json:"identityProof"`
	LandRecord    string `json:"landRecord"`
	BankPassbook  string `json:"bankPassbook"`
}

// DocumentSlots lists the slot names in the order they are presented.
var DocumentSlots = []string{"identityProof", "landRecord", "bankPassbook"}

// Get returns the reference stored in the named slot.
func (d ApplicationDocuments) Get(slot string) string {
	switch slot {
	case "identityProof":
		return d.IdentityProof
	case "landRecord":
		return d.LandRecord
	case "bankPassbook":
		return d.BankPassbook
	}
	return ""
}

// Set stores ref in the named slot. Unknown slots are ignored.
func (d *ApplicationDocuments) Set(slot, ref string) {
	switch slot {
	case "identityProof":
		d.IdentityProof = ref
	case "landRecord":
		d.LandRecord = ref
	case "bankPassbook":
		d.BankPassbook = ref
	}
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	OwnerID *uuid.UUID
	Status  *ApplicationStatus
	Limit   int
	Offset  int
}
