package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/patch"
)

var projectTable = table[project.Project]{
	name:     "projects",
	resource: "project",
	columns: []string{
		"id", "title", "description", "technologies",
		"project_url", "github_url", "image_url", "is_featured", "created_at",
	},
	writeColumns: []string{
		"title", "description", "technologies",
		"project_url", "github_url", "image_url", "is_featured",
	},
	scan: func(row pgx.Row) (*project.Project, error) {
		p := &project.Project{}
		err := row.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Technologies,
			&p.ProjectURL,
			&p.GithubURL,
			&p.ImageURL,
			&p.IsFeatured,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	values: func(p *project.Project) []any {
		return []any{
			p.Title, p.Description, p.Technologies,
			p.ProjectURL, p.GithubURL, p.ImageURL, p.IsFeatured,
		}
	},
}

type postgresProjectRepo struct {
	store collectionStore[project.Project]
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{store: collectionStore[project.Project]{
		db:      db,
		logger:  logger,
		table:   projectTable,
		orderBy: project.OrderBy,
	}}
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	return r.store.list(ctx)
}

func (r *postgresProjectRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	return r.store.create(ctx, p)
}

func (r *postgresProjectRepo) Update(ctx context.Context, id int64, p project.Patch) (*project.Project, error) {
	return r.store.update(ctx, id, projectChanges(p))
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func projectChanges(p project.Patch) map[string]any {
	changes := make(map[string]any)
	setValue(changes, "title", p.Title)
	setValue(changes, "description", p.Description)
	setValue(changes, "technologies", p.Technologies)
	setNullable(changes, "project_url", p.ProjectURL)
	setNullable(changes, "github_url", p.GithubURL)
	setNullable(changes, "image_url", p.ImageURL)
	setValue(changes, "is_featured", p.IsFeatured)
	return changes
}

func setValue[T any](changes map[string]any, col string, f patch.Field[T]) {
	if v, ok := f.Get(); ok {
		changes[col] = v
	}
}

// setNullable writes SQL NULL for an explicit null.
func setNullable[T any](changes map[string]any, col string, f patch.Field[T]) {
	if f.Set {
		changes[col] = f.Ptr()
	}
}
