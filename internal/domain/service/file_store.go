package service

import (
	"context"
	"io"
)

// FileStore defines the interface for the blob store backing file uploads.
// Content-type and size validation happen at the caller; the store only
// persists bytes under a key and hands back a public URL.
type FileStore interface {
	// Store writes the blob under the given key and returns its public URL.
	Store(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
