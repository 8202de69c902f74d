package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var contactTable = table[contact.Contact]{
	name:     "contact",
	resource: "contact",
	columns: []string{
		"id", "email", "phone", "linkedin_url", "github_url", "twitter_url", "location", "updated_at",
	},
	writeColumns: []string{"email", "phone", "linkedin_url", "github_url", "twitter_url", "location"},
	scan: func(row pgx.Row) (*contact.Contact, error) {
		c := &contact.Contact{}
		err := row.Scan(
			&c.ID,
			&c.Email,
			&c.Phone,
			&c.LinkedInURL,
			&c.GithubURL,
			&c.TwitterURL,
			&c.Location,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
	values: func(c *contact.Contact) []any {
		return []any{c.Email, c.Phone, c.LinkedInURL, c.GithubURL, c.TwitterURL, c.Location}
	},
}

type postgresContactRepo struct {
	store singletonStore[contact.Contact]
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{store: singletonStore[contact.Contact]{
		db:          db,
		logger:      logger,
		table:       contactTable,
		touchColumn: "updated_at",
	}}
}

func (r *postgresContactRepo) Get(ctx context.Context) (*contact.Contact, bool, error) {
	return r.store.get(ctx)
}

func (r *postgresContactRepo) Upsert(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	return r.store.upsert(ctx, c)
}
