package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var skillTable = table[skill.Skill]{
	name:         "skills",
	resource:     "skill",
	columns:      []string{"id", "name", "level", "category", "created_at"},
	writeColumns: []string{"name", "level", "category"},
	scan: func(row pgx.Row) (*skill.Skill, error) {
		s := &skill.Skill{}
		if err := row.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		return s, nil
	},
	values: func(s *skill.Skill) []any {
		return []any{s.Name, s.Level, s.Category}
	},
}

type postgresSkillRepo struct {
	store collectionStore[skill.Skill]
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{store: collectionStore[skill.Skill]{
		db:      db,
		logger:  logger,
		table:   skillTable,
		orderBy: skill.OrderBy,
	}}
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	return r.store.list(ctx)
}

func (r *postgresSkillRepo) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	return r.store.create(ctx, s)
}

func (r *postgresSkillRepo) Update(ctx context.Context, id int64, p skill.Patch) (*skill.Skill, error) {
	return r.store.update(ctx, id, skillChanges(p))
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func skillChanges(p skill.Patch) map[string]any {
	changes := make(map[string]any)
	setValue(changes, "name", p.Name)
	setValue(changes, "level", p.Level)
	setValue(changes, "category", p.Category)
	return changes
}
