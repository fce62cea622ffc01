package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadBytes = 5 << 20 // 5 MiB

// allowedUploadTypes maps accepted MIME types to the extension used when the
// original file name carries none.
var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	fileStore service.FileStore
	maxBytes  int64
	logger    *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	FileStore service.FileStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxSizeBytes > 0 {
		maxBytes = params.Config.Upload.MaxSizeBytes
	}

	return &uploadService{
		fileStore: params.FileStore,
		maxBytes:  maxBytes,
		logger:    params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadFile validates and stores a single file.
func (srv *uploadService) UploadFile(ctx context.Context, input *usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
	if err := srv.validate(input); err != nil {
		srv.log(ctx).Warn("Upload rejected",
			slog.String("fileName", input.FileName),
			slog.String("contentType", input.ContentType),
			slog.Int64("size", input.Size))

		return nil, err
	}

	return srv.store(ctx, input)
}

// UploadFiles stores a batch of files. Validation runs over the whole batch
// first so a bad file never leaves a partial batch behind.
func (srv *uploadService) UploadFiles(ctx context.Context, inputs []*usecase.UploadFileInput) ([]*usecase.UploadFileOutput, error) {
	for _, input := range inputs {
		if err := srv.validate(input); err != nil {
			srv.log(ctx).Warn("Upload batch rejected",
				slog.String("fileName", input.FileName),
				slog.String("contentType", input.ContentType))

			return nil, err
		}
	}

	outputs := make([]*usecase.UploadFileOutput, 0, len(inputs))
	for _, input := range inputs {
		out, err := srv.store(ctx, input)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

func (srv *uploadService) validate(input *usecase.UploadFileInput) error {
	if _, ok := allowedUploadTypes[input.ContentType]; !ok {
		return domainerrors.ErrUnsupportedFileType.WithDetails(
			fmt.Sprintf("content type %q is not allowed", input.ContentType))
	}
	if input.Size > srv.maxBytes {
		return domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("file is %s, limit is %s", util.FormatBytes(input.Size), util.FormatBytes(srv.maxBytes)))
	}

	return nil
}

func (srv *uploadService) store(ctx context.Context, input *usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
	// Random key with the original extension: uploads never collide and the
	// original file name never reaches the store.
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if ext == "" {
		ext = allowedUploadTypes[input.ContentType]
	}
	fileName := uuid.NewString() + ext

	kind := input.Kind
	if kind == "" {
		kind = "misc"
	}
	key := kind + "/" + fileName

	url, err := srv.fileStore.Store(ctx, key, input.ContentType, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	srv.log(ctx).Debug("File stored", slog.String("key", key))

	return &usecase.UploadFileOutput{URL: url, FileName: fileName}, nil
}
