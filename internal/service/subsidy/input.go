package subsidy

import (
	"fmt"
	"math"

	"github.com/krishisathi/backend/internal/domain"
)

// ApplyInput is a new subsidy application. Documents is keyed by slot name.
type ApplyInput struct {
	SchemeName string
	LandArea   float64
	CropType   *string
	Documents  map[string]domain.Upload
}

func (i ApplyInput) normalized() ApplyInput {
	i.SchemeName = domain.NormalizeName(i.SchemeName)
	i.CropType = domain.TrimOrNil(i.CropType)
	return i
}

func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.SchemeName == "" {
		errs = append(errs, domain.FieldError{Field: "schemeName", Message: "required"})
	} else if len(i.SchemeName) > 200 {
		errs = append(errs, domain.FieldError{Field: "schemeName", Message: "max 200 characters"})
	}

	if math.IsNaN(i.LandArea) || math.IsInf(i.LandArea, 0) || i.LandArea <= 0 {
		errs = append(errs, domain.FieldError{Field: "landArea", Message: "must be greater than 0"})
	}

	if i.CropType != nil && len(*i.CropType) > 100 {
		errs = append(errs, domain.FieldError{Field: "cropType", Message: "max 100 characters"})
	}

	for _, slot := range domain.DocumentSlots {
		if up, ok := i.Documents[slot]; !ok || up.Content == nil {
			errs = append(errs, domain.FieldError{Field: slot, Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput pages through applications, optionally filtered by status.
type ListInput struct {
	Status *domain.ApplicationStatus
	Limit  int
	Offset int
}

func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown application status %q", *i.Status))
	}
	if i.Limit < 0 || i.Offset < 0 {
		return domain.NewValidationError("limit", "must not be negative")
	}
	return nil
}
