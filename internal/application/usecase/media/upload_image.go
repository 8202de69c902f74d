package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	TargetAboutMe = "about_me"
	TargetProject = "projects"
)

type UploadImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadImageUseCase(u service.Uploader, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: u, logger: log}
}

type UploadImageInput struct {
	File   io.Reader
	Target string
}

type UploadImageOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Execute stores an image and returns its public URL. The URL is written to
// profile_image_url or image_url by a separate update call.
func (uc *UploadImageUseCase) Execute(ctx context.Context, in UploadImageInput) (*UploadImageOutput, error) {
	if uc.uploader == nil {
		return nil, apperror.NewInternal("image uploads are not configured", nil)
	}
	switch in.Target {
	case TargetAboutMe, TargetProject:
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown upload target '%s'", in.Target), nil)
	}
	if in.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}

	folder := fmt.Sprintf("portfolio/%s", in.Target)
	res, err := uc.uploader.Upload(ctx, in.File, folder, uuid.NewString())
	if err != nil {
		uc.logger.Error("Failed to upload image", err, zap.String("folder", folder))
		return nil, apperror.NewInternal("failed to upload image", err)
	}

	uc.logger.Info("Image uploaded", zap.String("public_id", res.PublicID))
	return &UploadImageOutput{URL: res.URL, PublicID: res.PublicID}, nil
}
