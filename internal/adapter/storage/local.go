// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

// Local writes files under a root directory and hands out references of the
// form "<publicPrefix>/<generated name>".
type Local struct {
	root     string
	prefix   string
	maxBytes int64
}

// NewLocal creates the root directory if needed.
func NewLocal(root, publicPrefix string, maxBytes int64) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{
		root:     root,
		prefix:   strings.TrimRight(publicPrefix, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Root returns the directory files are written to.
func (s *Local) Root() string { return s.root }

// Prefix returns the public URL prefix of stored references.
func (s *Local) Prefix() string { return s.prefix }

var extensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

func allows(kind domain.FileKind, contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		_, ok := extensions[contentType]
		return ok
	}
	return kind == domain.FileKindDocument && contentType == "application/pdf"
}

// Save sniffs the content type, enforces kind and size, and writes r to a
// fresh file. field names the form field in validation errors.
func (s *Local) Save(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return "", domain.NewValidationError(field, "file is empty")
		}
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !allows(kind, contentType) {
		return "", domain.NewValidationError(field, fmt.Sprintf("unsupported file type %s", contentType))
	}

	name := uuid.NewString() + extensions[contentType]
	dst := filepath.Join(s.root, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	body := io.MultiReader(strings.NewReader(string(head)), r)
	written, err := io.Copy(f, io.LimitReader(body, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	case closeErr != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("close file: %w", closeErr)
	case written > s.maxBytes:
		_ = os.Remove(dst)
		return "", domain.NewValidationError(field, fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	return path.Join(s.prefix, name), nil
}

// Delete removes a stored file by reference. Missing files are ignored.
func (s *Local) Delete(_ context.Context, ref string) error {
	name := strings.TrimPrefix(ref, s.prefix+"/")
	if name == ref || name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("foreign reference %q", ref)
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Open returns a reader for a stored reference.
func (s *Local) Open(ref string) (io.ReadCloser, error) {
	name := strings.TrimPrefix(ref, s.prefix+"/")
	if name == ref || name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("foreign reference %q: %w", ref, domain.ErrNotFound)
	}
	f, err := os.Open(filepath.Join(s.root, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file %s: %w", ref, domain.ErrNotFound)
	}
	return f, err
}
