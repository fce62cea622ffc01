package usecase

import (
	"context"
	"io"
)

// --- Input DTOs ---

// UploadFileInput is a single file received from a multipart form.
type UploadFileInput struct {
	// Kind groups uploads under a key prefix, e.g. "products" or "documents".
	Kind        string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// --- Output DTOs ---

// UploadFileOutput describes one stored file.
type UploadFileOutput struct {
	URL      string
	FileName string
}

// UploadUsecase validates and stores uploaded files. Only a small image MIME
// allowlist is accepted and files above the configured ceiling are rejected
// before any bytes reach the blob store.
type UploadUsecase interface {
	// UploadFile validates and stores a single file, returning its public URL.
	UploadFile(ctx context.Context, input *UploadFileInput) (*UploadFileOutput, error)

	// UploadFiles stores a batch of files; the whole batch is rejected when
	// any file fails validation.
	UploadFiles(ctx context.Context, inputs []*UploadFileInput) ([]*UploadFileOutput, error)
}
