package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/khoahotran/portfolio/internal/application/usecase/media"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type MediaHandler struct {
	uploadImageUC *mediaUC.UploadImageUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadImageUC: uploadUC, logger: log}
}

// UploadImage accepts a multipart form with a "file" part and a "target"
// field (about_me or projects) and returns the stored image URL.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.Error(apperror.NewInvalidInput("'file' must be an image", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadImageUC.Execute(c.Request.Context(), mediaUC.UploadImageInput{
		File:   file,
		Target: c.DefaultPostForm("target", mediaUC.TargetProject),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}
