package portfolio_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/application/mocks"
	"github.com/khoahotran/portfolio/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type deps struct {
	about    *mocks.AboutMeRepo
	contact  *mocks.ContactRepo
	skills   *mocks.SkillRepo
	projects *mocks.ProjectRepo
	cache    *mocks.SnapshotCache
}

func newUseCase() (*portfolioUC.SnapshotUseCase, deps) {
	d := deps{
		about:    new(mocks.AboutMeRepo),
		contact:  new(mocks.ContactRepo),
		skills:   new(mocks.SkillRepo),
		projects: new(mocks.ProjectRepo),
		cache:    new(mocks.SnapshotCache),
	}
	uc := portfolioUC.NewSnapshotUseCase(d.about, d.contact, d.skills, d.projects, d.cache, logger.NewNop())
	return uc, d
}

func TestGetSnapshot_CacheHitSkipsStore(t *testing.T) {
	uc, d := newUseCase()
	cached := &portfolio.Snapshot{Skills: []*skill.Skill{{ID: 1, Name: "Go"}}}
	d.cache.On("Get", mock.Anything).Return(cached, true, nil)

	got, err := uc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Same(t, cached, got)
	assert.NotNil(t, got.Projects)
	d.skills.AssertNotCalled(t, "List", mock.Anything)
}

func TestGetSnapshot_MissBuildsAndCaches(t *testing.T) {
	uc, d := newUseCase()
	now := time.Now()

	d.cache.On("Get", mock.Anything).Return(nil, false, errors.New("redis down"))
	d.about.On("Get", mock.Anything).Return(nil, false, nil)
	d.contact.On("Get", mock.Anything).Return(&contact.Contact{ID: 1, Email: "me@example.com"}, true, nil)
	d.skills.On("List", mock.Anything).Return([]*skill.Skill{}, nil)
	d.projects.On("List", mock.Anything).Return([]*project.Project{
		{ID: 1, Title: "old", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Title: "featured", IsFeatured: true, CreatedAt: now.Add(-2 * time.Hour)},
	}, nil)
	d.cache.On("Generation", mock.Anything).Return(int64(3), nil)
	d.cache.On("Set", mock.Anything, mock.Anything, int64(3)).Return(nil)

	got, err := uc.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got.AboutMe, "absent about-me stays null")
	assert.Equal(t, "me@example.com", got.Contact.Email)
	assert.Empty(t, got.Skills)
	assert.NotNil(t, got.Skills)
	assert.Equal(t, "featured", got.Projects[0].Title)
	d.cache.AssertCalled(t, "Set", mock.Anything, got, int64(3))
}

func TestRebuild_StoreErrorIsReturned(t *testing.T) {
	uc, d := newUseCase()
	d.cache.On("Generation", mock.Anything).Return(int64(0), nil)
	d.about.On("Get", mock.Anything).Return(nil, false, errors.New("db down"))

	_, err := uc.Rebuild(context.Background())

	assert.Error(t, err)
	d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestRebuild_ReadsGenerationBeforeStore(t *testing.T) {
	uc, d := newUseCase()
	var order []string
	d.cache.On("Generation", mock.Anything).Return(int64(7), nil).
		Run(func(mock.Arguments) { order = append(order, "generation") })
	d.about.On("Get", mock.Anything).Return(nil, false, nil).
		Run(func(mock.Arguments) { order = append(order, "store") })
	d.contact.On("Get", mock.Anything).Return(nil, false, nil)
	d.skills.On("List", mock.Anything).Return([]*skill.Skill{}, nil)
	d.projects.On("List", mock.Anything).Return([]*project.Project{}, nil)
	d.cache.On("Set", mock.Anything, mock.Anything, int64(7)).Return(service.ErrStaleSnapshot)

	got, err := uc.Rebuild(context.Background())

	require.NoError(t, err, "a stale generation only skips caching")
	assert.NotNil(t, got)
	assert.Equal(t, []string{"generation", "store"}, order)
	d.cache.AssertExpectations(t)
}

func TestRebuild_GenerationErrorSkipsCaching(t *testing.T) {
	uc, d := newUseCase()
	d.cache.On("Generation", mock.Anything).Return(int64(0), errors.New("redis down"))
	d.about.On("Get", mock.Anything).Return(nil, false, nil)
	d.contact.On("Get", mock.Anything).Return(nil, false, nil)
	d.skills.On("List", mock.Anything).Return([]*skill.Skill{}, nil)
	d.projects.On("List", mock.Anything).Return([]*project.Project{}, nil)

	_, err := uc.Rebuild(context.Background())

	require.NoError(t, err)
	d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
