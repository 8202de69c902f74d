package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ProjectUseCase struct {
	repo     project.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewProjectUseCase(repo project.Repository, notifier *service.ChangeNotifier, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, notifier: notifier, logger: log}
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*project.Project, error) {
	projects, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, nil
}

type CreateProjectInput struct {
	Title        *string `json:"title" validate:"required"`
	Description  *string `json:"description" validate:"required"`
	Technologies *string `json:"technologies" validate:"required"`
	ProjectURL   *string `json:"project_url"`
	GithubURL    *string `json:"github_url"`
	ImageURL     *string `json:"image_url"`
	IsFeatured   *bool   `json:"is_featured"`
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	p := &project.Project{
		Title:        *in.Title,
		Description:  *in.Description,
		Technologies: *in.Technologies,
		ProjectURL:   nullIfEmpty(in.ProjectURL),
		GithubURL:    nullIfEmpty(in.GithubURL),
		ImageURL:     nullIfEmpty(in.ImageURL),
		IsFeatured:   in.IsFeatured != nil && *in.IsFeatured,
	}

	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceProject, portfolio.ActionCreated, created.ID)
	return created, nil
}

type UpdateProjectInput struct {
	ID *int64 `json:"id" validate:"required"`
	project.Patch
}

func (in UpdateProjectInput) Validate() error {
	return in.Patch.Validate()
}

// UpdateProject writes only the fields present in the patch; a null URL
// clears it.
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, in UpdateProjectInput) (*project.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project patch validation failed", err)
	}

	p, err := uc.repo.Update(ctx, *in.ID, in.Patch)
	if err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	if !in.Patch.IsEmpty() {
		uc.notifier.Notify(ctx, portfolio.ResourceProject, portfolio.ActionUpdated, p.ID)
	}
	return p, nil
}

type DeleteProjectInput struct {
	ID *int64 `json:"id" validate:"required"`
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, in DeleteProjectInput) error {
	if err := uc.repo.Delete(ctx, *in.ID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceProject, portfolio.ActionDeleted, *in.ID)
	return nil
}

// Links are optional on create; an empty string is stored as null.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
