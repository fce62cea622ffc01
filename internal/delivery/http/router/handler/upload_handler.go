package handler

import (
	"mime/multipart"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for the file upload endpoints.
type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uploadUsecase usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

// UploadFile stores a single multipart file and returns its public URL.
func (h *UploadHandler) UploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}

	input, closeFn, err := uploadInput(c.FormValue("kind"), fileHeader)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
	}
	defer closeFn()

	output, err := h.uploadUsecase.UploadFile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded successfully")
}

// UploadFiles stores a batch of multipart files.
func (h *UploadHandler) UploadFiles(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid multipart form")
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Missing files field")
	}

	kind := c.FormValue("kind")
	inputs := make([]*usecase.UploadFileInput, 0, len(fileHeaders))
	closers := make([]func(), 0, len(fileHeaders))
	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()

	for _, fileHeader := range fileHeaders {
		input, closeFn, err := uploadInput(kind, fileHeader)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
		}
		closers = append(closers, closeFn)
		inputs = append(inputs, input)
	}

	outputs, err := h.uploadUsecase.UploadFiles(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, outputs, "Files uploaded successfully")
}

func uploadInput(kind string, fileHeader *multipart.FileHeader) (*usecase.UploadFileInput, func(), error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &usecase.UploadFileInput{
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	}, func() { file.Close() }, nil
}
