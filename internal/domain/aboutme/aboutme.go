package aboutme

import (
	"context"
	"time"
)

// AboutMe is the single profile row shown on the landing section.
type AboutMe struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ProfileImageURL *string   `json:"profile_image_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Repository stores at most one AboutMe. Get reports found=false on an empty
// table. Upsert writes every mutable field, so a nil ProfileImageURL clears it.
type Repository interface {
	Get(ctx context.Context) (*AboutMe, bool, error)
	Upsert(ctx context.Context, a *AboutMe) (*AboutMe, error)
}
