package farmer

import (
	"strings"

	"github.com/krishisathi/backend/internal/domain"
)

// UpdateProfileInput holds optional profile fields; nil keeps the stored value.
type UpdateProfileInput struct {
	Name     *string
	Phone    *string
	Village  *string
	District *string
	State    *string
}

func (i UpdateProfileInput) normalized() UpdateProfileInput {
	if i.Name != nil {
		n := domain.NormalizeName(*i.Name)
		i.Name = &n
	}
	for _, f := range []**string{&i.Phone, &i.Village, &i.District, &i.State} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"phone", i.Phone}, {"village", i.Village}, {"district", i.District}, {"state", i.State},
	}
	for _, f := range fields {
		if f.value != nil && len(*f.value) > 100 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 100 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
