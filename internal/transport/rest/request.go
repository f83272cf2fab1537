package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

const maxJSONBody = 64 << 10

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid id")
	}
	return id, nil
}

type page struct {
	Limit  int
	Offset int
}

// parsePage reads limit and offset from the query string.
func parsePage(r *http.Request) (page, error) {
	var (
		p    page
		errs []domain.FieldError
	)
	q := r.URL.Query()
	for _, f := range []struct {
		name string
		dst  *int
	}{{"limit", &p.Limit}, {"offset", &p.Offset}} {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be a non-negative integer"})
			continue
		}
		*f.dst = n
	}
	if len(errs) > 0 {
		return page{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

// optionalQuery returns nil for an absent or blank parameter.
func optionalQuery(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// multipartForm parses a multipart request bounded by limit bytes.
func multipartForm(w http.ResponseWriter, r *http.Request, limit int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("request exceeds %d bytes", limit))
		}
		return domain.NewValidationError("body", "invalid multipart form")
	}
	return nil
}

// formFiles opens every file posted under field. The returned closer must be
// called once the uploads have been consumed.
func formFiles(r *http.Request, field string) ([]domain.Upload, func(), error) {
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[field]
	}

	uploads := make([]domain.Upload, 0, len(headers))
	opened := make([]io.Closer, 0, len(headers))
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
		}
		opened = append(opened, f)
		uploads = append(uploads, domain.Upload{Filename: fh.Filename, Content: f})
	}
	return uploads, closeAll, nil
}

// formFile opens the single file posted under field. A missing file yields
// an Upload with nil Content.
func formFile(r *http.Request, field string) (domain.Upload, func(), error) {
	uploads, closer, err := formFiles(r, field)
	if err != nil || len(uploads) == 0 {
		return domain.Upload{}, closer, err
	}
	return uploads[0], closer, nil
}

func optionalForm(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}
