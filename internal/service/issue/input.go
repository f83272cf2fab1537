package issue

import (
	"fmt"
	"strings"

	"github.com/krishisathi/backend/internal/domain"
)

// CreateInput is the payload of a new crop-issue report.
type CreateInput struct {
	Title       string
	Description string
	CropType    *string
	Attachments []domain.Upload
}

func (i CreateInput) normalized() CreateInput {
	i.Title = domain.NormalizeName(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.CropType = domain.TrimOrNil(i.CropType)
	return i
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if i.CropType != nil && len(*i.CropType) > 100 {
		errs = append(errs, domain.FieldError{Field: "cropType", Message: "max 100 characters"})
	}

	if len(i.Attachments) > MaxAttachments {
		errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("at most %d files", MaxAttachments)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput pages through issues, optionally filtered by status.
type ListInput struct {
	Status *domain.IssueStatus
	Limit  int
	Offset int
}

func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown issue status %q", *i.Status))
	}
	if i.Limit < 0 || i.Offset < 0 {
		return domain.NewValidationError("limit", "must not be negative")
	}
	return nil
}
