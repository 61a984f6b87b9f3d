// Package storage uploads receipt images to an object store and hands back a
// reference the receipt extractor can read.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"fintrack/internal/uuid"
)

// ObjectStore stores a file and returns its public reference.
type ObjectStore interface {
	Store(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// ObjectName returns a collision-free object name that keeps the extension
// of the uploaded file name.
func ObjectName(original string) string {
	ext := strings.ToLower(path.Ext(original))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\ ") {
		ext = ""
	}
	return uuid.New() + ext
}
