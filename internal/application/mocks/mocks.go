// Package mocks holds testify mocks for the repository and service
// interfaces used by the use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

type AboutMeRepo struct{ mock.Mock }

func (m *AboutMeRepo) Get(ctx context.Context) (*aboutme.AboutMe, bool, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).(*aboutme.AboutMe)
	return a, args.Bool(1), args.Error(2)
}

func (m *AboutMeRepo) Upsert(ctx context.Context, a *aboutme.AboutMe) (*aboutme.AboutMe, error) {
	args := m.Called(ctx, a)
	out, _ := args.Get(0).(*aboutme.AboutMe)
	return out, args.Error(1)
}

type ContactRepo struct{ mock.Mock }

func (m *ContactRepo) Get(ctx context.Context) (*contact.Contact, bool, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Bool(1), args.Error(2)
}

func (m *ContactRepo) Upsert(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*contact.Contact)
	return out, args.Error(1)
}

type SkillRepo struct{ mock.Mock }

func (m *SkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*skill.Skill)
	return out, args.Error(1)
}

func (m *SkillRepo) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*skill.Skill)
	return out, args.Error(1)
}

func (m *SkillRepo) Update(ctx context.Context, id int64, p skill.Patch) (*skill.Skill, error) {
	args := m.Called(ctx, id, p)
	out, _ := args.Get(0).(*skill.Skill)
	return out, args.Error(1)
}

func (m *SkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type ProjectRepo struct{ mock.Mock }

func (m *ProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*project.Project)
	return out, args.Error(1)
}

func (m *ProjectRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*project.Project)
	return out, args.Error(1)
}

func (m *ProjectRepo) Update(ctx context.Context, id int64, p project.Patch) (*project.Project, error) {
	args := m.Called(ctx, id, p)
	out, _ := args.Get(0).(*project.Project)
	return out, args.Error(1)
}

func (m *ProjectRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type SnapshotCache struct{ mock.Mock }

func (m *SnapshotCache) Get(ctx context.Context) (*portfolio.Snapshot, bool, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*portfolio.Snapshot)
	return s, args.Bool(1), args.Error(2)
}

func (m *SnapshotCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SnapshotCache) Set(ctx context.Context, s *portfolio.Snapshot, generation int64) error {
	return m.Called(ctx, s, generation).Error(0)
}

func (m *SnapshotCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
