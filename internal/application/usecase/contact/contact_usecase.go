package contact

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ContactUseCase struct {
	repo     contact.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewContactUseCase(repo contact.Repository, notifier *service.ChangeNotifier, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier, logger: log}
}

func (uc *ContactUseCase) GetContact(ctx context.Context) (*contact.Contact, bool, error) {
	c, found, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get contact failed: %w", err)
	}
	return c, found, nil
}

type UpdateContactInput struct {
	Email       *string `json:"email" validate:"required"`
	Phone       *string `json:"phone"`
	LinkedInURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	TwitterURL  *string `json:"twitter_url"`
	Location    *string `json:"location"`
}

// UpdateContact replaces the contact card; omitted optional fields are
// cleared.
func (uc *ContactUseCase) UpdateContact(ctx context.Context, in UpdateContactInput) (*contact.Contact, error) {
	c, err := uc.repo.Upsert(ctx, &contact.Contact{
		Email:       *in.Email,
		Phone:       in.Phone,
		LinkedInURL: in.LinkedInURL,
		GithubURL:   in.GithubURL,
		TwitterURL:  in.TwitterURL,
		Location:    in.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("update contact failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceContact, portfolio.ActionUpdated, c.ID)
	return c, nil
}
