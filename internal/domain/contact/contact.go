package contact

import (
	"context"
	"time"
)

type Contact struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	LinkedInURL *string   `json:"linkedin_url"`
	GithubURL   *string   `json:"github_url"`
	TwitterURL  *string   `json:"twitter_url"`
	Location    *string   `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository stores at most one Contact, with the same semantics as
// aboutme.Repository.
type Repository interface {
	Get(ctx context.Context) (*Contact, bool, error)
	Upsert(ctx context.Context, c *Contact) (*Contact, error)
}
