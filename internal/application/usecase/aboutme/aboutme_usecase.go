package aboutme

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type AboutMeUseCase struct {
	repo     aboutme.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewAboutMeUseCase(repo aboutme.Repository, notifier *service.ChangeNotifier, log logger.Logger) *AboutMeUseCase {
	return &AboutMeUseCase{repo: repo, notifier: notifier, logger: log}
}

// GetAboutMe returns found=false when nothing has been written yet.
func (uc *AboutMeUseCase) GetAboutMe(ctx context.Context) (*aboutme.AboutMe, bool, error) {
	a, found, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get about me failed: %w", err)
	}
	return a, found, nil
}

type UpdateAboutMeInput struct {
	Title           *string `json:"title" validate:"required"`
	Description     *string `json:"description" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// UpdateAboutMe replaces the profile. An omitted profile_image_url is stored
// as null.
func (uc *AboutMeUseCase) UpdateAboutMe(ctx context.Context, in UpdateAboutMeInput) (*aboutme.AboutMe, error) {
	a, err := uc.repo.Upsert(ctx, &aboutme.AboutMe{
		Title:           *in.Title,
		Description:     *in.Description,
		ProfileImageURL: in.ProfileImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("update about me failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceAboutMe, portfolio.ActionUpdated, a.ID)
	return a, nil
}
