package skill

import (
	"context"
	"errors"
	"time"

	"github.com/khoahotran/portfolio/pkg/patch"
)

type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries the fields of a partial update. Omitted fields keep their
// stored value.
type Patch struct {
	Name     patch.Field[string] `json:"name,omitzero"`
	Level    patch.Field[string] `json:"level,omitzero"`
	Category patch.Field[string] `json:"category,omitzero"`
}

var (
	ErrNullName     = errors.New("name cannot be null")
	ErrNullLevel    = errors.New("level cannot be null")
	ErrNullCategory = errors.New("category cannot be null")
)

// Validate rejects explicit nulls; every skill column is NOT NULL.
func (p Patch) Validate() error {
	switch {
	case p.Name.Null:
		return ErrNullName
	case p.Level.Null:
		return ErrNullLevel
	case p.Category.Null:
		return ErrNullCategory
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return !p.Name.Set && !p.Level.Set && !p.Category.Set
}

type Repository interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, s *Skill) (*Skill, error)
	Update(ctx context.Context, id int64, p Patch) (*Skill, error)
	Delete(ctx context.Context, id int64) error
}
