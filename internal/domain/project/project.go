package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/khoahotran/portfolio/pkg/patch"
)

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	ProjectURL   *string   `json:"project_url"`
	GithubURL    *string   `json:"github_url"`
	ImageURL     *string   `json:"image_url"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// Patch carries the fields of a partial update. The three URL fields accept
// an explicit null, which clears them; the others are NOT NULL columns.
type Patch struct {
	Title        patch.Field[string] `json:"title,omitzero"`
	Description  patch.Field[string] `json:"description,omitzero"`
	Technologies patch.Field[string] `json:"technologies,omitzero"`
	ProjectURL   patch.Field[string] `json:"project_url,omitzero"`
	GithubURL    patch.Field[string] `json:"github_url,omitzero"`
	ImageURL     patch.Field[string] `json:"image_url,omitzero"`
	IsFeatured   patch.Field[bool]   `json:"is_featured,omitzero"`
}

var (
	ErrNullTitle        = errors.New("title cannot be null")
	ErrNullDescription  = errors.New("description cannot be null")
	ErrNullTechnologies = errors.New("technologies cannot be null")
	ErrNullIsFeatured   = errors.New("is_featured cannot be null")
)

func (p Patch) Validate() error {
	switch {
	case p.Title.Null:
		return ErrNullTitle
	case p.Description.Null:
		return ErrNullDescription
	case p.Technologies.Null:
		return ErrNullTechnologies
	case p.IsFeatured.Null:
		return ErrNullIsFeatured
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Technologies.Set &&
		!p.ProjectURL.Set && !p.GithubURL.Set && !p.ImageURL.Set && !p.IsFeatured.Set
}

// SplitTechnologies turns the stored comma-separated list into trimmed,
// non-empty entries. The stored value itself is never normalized.
func SplitTechnologies(technologies string) []string {
	parts := strings.Split(technologies, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, id int64, p Patch) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
