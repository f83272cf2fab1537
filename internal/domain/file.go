package domain

import "io"

// FileKind restricts what content an uploaded file may contain.
type FileKind int

const (
	// FileKindImage accepts JPEG, PNG, GIF and WebP.
	FileKindImage FileKind = iota
	// FileKindDocument accepts images and PDF.
	FileKindDocument
)

// Upload is a file received from a client, not yet stored.
type Upload struct {
	Filename string
	Content  io.Reader
}
