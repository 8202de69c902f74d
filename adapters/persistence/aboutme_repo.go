package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var aboutMeTable = table[aboutme.AboutMe]{
	name:         "about_me",
	resource:     "about_me",
	columns:      []string{"id", "title", "description", "profile_image_url", "updated_at"},
	writeColumns: []string{"title", "description", "profile_image_url"},
	scan: func(row pgx.Row) (*aboutme.AboutMe, error) {
		a := &aboutme.AboutMe{}
		if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.ProfileImageURL, &a.UpdatedAt); err != nil {
			return nil, err
		}
		return a, nil
	},
	values: func(a *aboutme.AboutMe) []any {
		return []any{a.Title, a.Description, a.ProfileImageURL}
	},
}

type postgresAboutMeRepo struct {
	store singletonStore[aboutme.AboutMe]
}

func NewPostgresAboutMeRepo(db *pgxpool.Pool, logger logger.Logger) aboutme.Repository {
	return &postgresAboutMeRepo{store: singletonStore[aboutme.AboutMe]{
		db:          db,
		logger:      logger,
		table:       aboutMeTable,
		touchColumn: "updated_at",
	}}
}

func (r *postgresAboutMeRepo) Get(ctx context.Context) (*aboutme.AboutMe, bool, error) {
	return r.store.get(ctx)
}

func (r *postgresAboutMeRepo) Upsert(ctx context.Context, a *aboutme.AboutMe) (*aboutme.AboutMe, error) {
	return r.store.upsert(ctx, a)
}
