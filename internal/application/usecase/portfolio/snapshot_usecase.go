package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SnapshotUseCase struct {
	aboutMeRepo aboutme.Repository
	contactRepo contact.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
	cache       service.SnapshotCache
	logger      logger.Logger
}

func NewSnapshotUseCase(
	aboutMeRepo aboutme.Repository,
	contactRepo contact.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	cache service.SnapshotCache,
	log logger.Logger,
) *SnapshotUseCase {
	if cache == nil {
		cache = service.NopCache{}
	}
	return &SnapshotUseCase{
		aboutMeRepo: aboutMeRepo,
		contactRepo: contactRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		cache:       cache,
		logger:      log,
	}
}

// GetSnapshot serves the cached snapshot when there is one and builds (and
// caches) a fresh one otherwise. Cache failures degrade to a store read.
func (uc *SnapshotUseCase) GetSnapshot(ctx context.Context) (*portfolio.Snapshot, error) {
	cached, hit, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warn("Failed to read portfolio snapshot from cache", zap.Error(err))
	}
	if hit {
		cached.Normalize()
		return cached, nil
	}
	return uc.Rebuild(ctx)
}

// Rebuild reads all four resources from the store and overwrites the cache.
// The cache generation is read before the store so that a write committed
// during the rebuild makes the Set a no-op instead of caching stale data.
func (uc *SnapshotUseCase) Rebuild(ctx context.Context) (*portfolio.Snapshot, error) {
	generation, genErr := uc.cache.Generation(ctx)
	if genErr != nil {
		uc.logger.Warn("Failed to read portfolio snapshot generation", zap.Error(genErr))
	}

	s, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return s, nil
	}

	switch err := uc.cache.Set(ctx, s, generation); {
	case errors.Is(err, service.ErrStaleSnapshot):
		uc.logger.Info("Skipped caching portfolio snapshot; content changed during rebuild",
			zap.Int64("generation", generation))
	case err != nil:
		uc.logger.Warn("Failed to store portfolio snapshot in cache", zap.Error(err))
	}
	return s, nil
}

func (uc *SnapshotUseCase) build(ctx context.Context) (*portfolio.Snapshot, error) {
	about, found, err := uc.aboutMeRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load about me failed: %w", err)
	}
	if !found {
		about = nil
	}

	c, found, err := uc.contactRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contact failed: %w", err)
	}
	if !found {
		c = nil
	}

	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skills failed: %w", err)
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects failed: %w", err)
	}

	s := &portfolio.Snapshot{
		AboutMe:     about,
		Skills:      skills,
		Projects:    projects,
		Contact:     c,
		GeneratedAt: time.Now().UTC(),
	}
	s.Normalize()
	return s, nil
}
