package file

import (
	"context"
	"net/http"
	"path/filepath"
)

// File represents stored file metadata.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string
	RelativePath string
}

// Entry represents a file or directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage interface for different backends. A Storage takes ownership of the
// payload bytes passed to Save; callers must not mutate them afterwards.
type Storage interface {
	// Save persists payload bytes under the given path and returns metadata.
	Save(ctx context.Context, path string, data []byte) (*File, error)
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
	// URL returns the public URL for a file.
	URL(path string) string
}

// DetectMIMEType sniffs the MIME type from the payload's leading bytes.
// Uses http.DetectContentType, which inspects at most the first 512 bytes
// and always returns a valid MIME type.
func DetectMIMEType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// Extension returns the file extension including the dot.
func Extension(filename string) string {
	return filepath.Ext(filename)
}
