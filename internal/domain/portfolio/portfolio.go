package portfolio

import (
	"time"

	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

// Snapshot is everything the public page renders, read in one go.
type Snapshot struct {
	AboutMe     *aboutme.AboutMe   `json:"about_me"`
	Skills      []*skill.Skill     `json:"skills"`
	Projects    []*project.Project `json:"projects"`
	Contact     *contact.Contact   `json:"contact"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Normalize applies the listing order to both collections and replaces nil
// slices with empty ones.
func (s *Snapshot) Normalize() {
	if s.Skills == nil {
		s.Skills = []*skill.Skill{}
	}
	if s.Projects == nil {
		s.Projects = []*project.Project{}
	}
	skill.Sort(s.Skills)
	project.Sort(s.Projects)
}
