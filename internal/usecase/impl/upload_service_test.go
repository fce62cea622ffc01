package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

func newUploadFixture(t *testing.T, maxBytes int64) (usecase.UploadUsecase, *fakeFileStore) {
	t.Helper()

	cfg := newTestConfig()
	cfg.Upload = &config.UploadConfig{MaxSizeBytes: maxBytes}

	store := newFakeFileStore()
	svc := NewUploadService(UploadServiceParams{
		FileStore: store,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return svc, store
}

func imageInput(name, contentType, kind string, size int64) *usecase.UploadFileInput {
	return &usecase.UploadFileInput{
		Kind:        kind,
		FileName:    name,
		ContentType: contentType,
		Size:        size,
		Content:     strings.NewReader("fake image bytes"),
	}
}

func TestUploadFile(t *testing.T) {
	svc, store := newUploadFixture(t, 1024)

	out, err := svc.UploadFile(context.Background(), imageInput("photo.JPG", "image/jpeg", "products", 16))
	require.NoError(t, err)
	assert.NotEmpty(t, out.URL)
	assert.True(t, strings.HasSuffix(out.FileName, ".jpg"), "extension survives lowercased: %s", out.FileName)

	require.Len(t, store.stored, 1)
	for key := range store.stored {
		assert.True(t, strings.HasPrefix(key, "products/"), "key carries the kind prefix: %s", key)
	}
}

func TestUploadFile_ExtensionFromContentType(t *testing.T) {
	svc, _ := newUploadFixture(t, 1024)

	out, err := svc.UploadFile(context.Background(), imageInput("no-extension", "image/png", "", 16))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.FileName, ".png"), out.FileName)
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	svc, store := newUploadFixture(t, 1024)

	_, err := svc.UploadFile(context.Background(), imageInput("report.pdf", "application/pdf", "documents", 16))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	assert.Empty(t, store.stored)
}

func TestUploadFile_TooLarge(t *testing.T) {
	svc, store := newUploadFixture(t, 1024)

	_, err := svc.UploadFile(context.Background(), imageInput("huge.jpg", "image/jpeg", "products", 2048))
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	assert.Empty(t, store.stored)
}

func TestUploadFiles_BatchRejectedWholly(t *testing.T) {
	svc, store := newUploadFixture(t, 1024)

	inputs := []*usecase.UploadFileInput{
		imageInput("ok.png", "image/png", "products", 16),
		imageInput("bad.pdf", "application/pdf", "products", 16),
	}

	// One invalid file fails the batch before anything is stored.
	_, err := svc.UploadFiles(context.Background(), inputs)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	assert.Empty(t, store.stored)
}

func TestUploadFiles(t *testing.T) {
	svc, store := newUploadFixture(t, 1024)

	outs, err := svc.UploadFiles(context.Background(), []*usecase.UploadFileInput{
		imageInput("a.png", "image/png", "products", 16),
		imageInput("b.webp", "image/webp", "products", 16),
	})
	require.NoError(t, err)
	assert.Len(t, outs, 2)
	assert.Len(t, store.stored, 2)
}
