package skill

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SkillUseCase struct {
	repo     skill.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewSkillUseCase(repo skill.Repository, notifier *service.ChangeNotifier, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: repo, notifier: notifier, logger: log}
}

func (uc *SkillUseCase) ListSkills(ctx context.Context) ([]*skill.Skill, error) {
	skills, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return skills, nil
}

// CreateSkillInput fields must be present; an empty string is a value.
type CreateSkillInput struct {
	Name     *string `json:"name" validate:"required"`
	Level    *string `json:"level" validate:"required"`
	Category *string `json:"category" validate:"required"`
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in CreateSkillInput) (*skill.Skill, error) {
	s, err := uc.repo.Create(ctx, &skill.Skill{
		Name:     *in.Name,
		Level:    *in.Level,
		Category: *in.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create skill failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceSkill, portfolio.ActionCreated, s.ID)
	return s, nil
}

type UpdateSkillInput struct {
	ID *int64 `json:"id" validate:"required"`
	skill.Patch
}

func (in UpdateSkillInput) Validate() error {
	return in.Patch.Validate()
}

// UpdateSkill writes only the fields present in the patch. An empty patch
// returns the stored row untouched. An unknown id, zero included, is NotFound.
func (uc *SkillUseCase) UpdateSkill(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	if err := in.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill patch validation failed", err)
	}

	s, err := uc.repo.Update(ctx, *in.ID, in.Patch)
	if err != nil {
		return nil, fmt.Errorf("update skill failed: %w", err)
	}

	if !in.Patch.IsEmpty() {
		uc.notifier.Notify(ctx, portfolio.ResourceSkill, portfolio.ActionUpdated, s.ID)
	}
	return s, nil
}

type DeleteSkillInput struct {
	ID *int64 `json:"id" validate:"required"`
}

// DeleteSkill succeeds whether or not the id exists.
func (uc *SkillUseCase) DeleteSkill(ctx context.Context, in DeleteSkillInput) error {
	if err := uc.repo.Delete(ctx, *in.ID); err != nil {
		return fmt.Errorf("delete skill failed: %w", err)
	}

	uc.notifier.Notify(ctx, portfolio.ResourceSkill, portfolio.ActionDeleted, *in.ID)
	return nil
}
