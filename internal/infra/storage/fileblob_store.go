// Package storage implements the FileStore service on top of gocloud.dev
// blob buckets.
package storage

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// fileblobStore persists uploads in a local directory through the portable
// blob API, so swapping in a cloud bucket is a driver change only.
type fileblobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewFileblobStore opens (creating if needed) the upload directory as a blob
// bucket.
func NewFileblobStore(cfg *config.Config) (service.FileStore, func() error, error) {
	if cfg.Upload == nil || cfg.Upload.Dir == "" {
		return nil, nil, errors.New("upload directory must be configured")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create upload directory")
	}

	bucket, err := fileblob.OpenBucket(cfg.Upload.Dir, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open fileblob bucket")
	}

	store := &fileblobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Upload.PublicBaseURL, "/"),
	}

	return store, bucket.Close, nil
}

func (s *fileblobStore) Store(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	return s.publicURL(key), nil
}

// publicURL joins the configured base URL with the key, escaping each path
// segment.
func (s *fileblobStore) publicURL(key string) string {
	segments := strings.Split(key, "/")
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	return s.publicBaseURL + "/" + path.Join(escaped...)
}
