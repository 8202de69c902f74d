package dispatch

import (
	"context"
	"time"

	aboutmeUC "github.com/khoahotran/portfolio/internal/application/usecase/aboutme"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

type UseCases struct {
	AboutMe *aboutmeUC.AboutMeUseCase
	Contact *contactUC.ContactUseCase
	Skill   *skillUC.SkillUseCase
	Project *projectUC.ProjectUseCase
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterPortfolio registers the public portfolio API. Singleton reads
// return nil when nothing has been stored yet; deletes return nil.
func RegisterPortfolio(d *Dispatcher, uc UseCases) {
	d.Register(
		Query("healthcheck", func(context.Context, NoInput) (HealthStatus, error) {
			return HealthStatus{Status: "ok", Timestamp: time.Now().UTC()}, nil
		}),

		Query("getAboutMe", func(ctx context.Context, _ NoInput) (*aboutme.AboutMe, error) {
			a, found, err := uc.AboutMe.GetAboutMe(ctx)
			if err != nil || !found {
				return nil, err
			}
			return a, nil
		}),
		Mutation("updateAboutMe", uc.AboutMe.UpdateAboutMe),

		Query("getSkills", func(ctx context.Context, _ NoInput) ([]*skill.Skill, error) {
			return uc.Skill.ListSkills(ctx)
		}),
		Mutation("createSkill", uc.Skill.CreateSkill),
		Mutation("updateSkill", uc.Skill.UpdateSkill),
		Mutation("deleteSkill", func(ctx context.Context, in skillUC.DeleteSkillInput) (any, error) {
			return nil, uc.Skill.DeleteSkill(ctx, in)
		}),

		Query("getProjects", func(ctx context.Context, _ NoInput) ([]*project.Project, error) {
			return uc.Project.ListProjects(ctx)
		}),
		Mutation("createProject", uc.Project.CreateProject),
		Mutation("updateProject", uc.Project.UpdateProject),
		Mutation("deleteProject", func(ctx context.Context, in projectUC.DeleteProjectInput) (any, error) {
			return nil, uc.Project.DeleteProject(ctx, in)
		}),

		Query("getContact", func(ctx context.Context, _ NoInput) (*contact.Contact, error) {
			c, found, err := uc.Contact.GetContact(ctx)
			if err != nil || !found {
				return nil, err
			}
			return c, nil
		}),
		Mutation("updateContact", uc.Contact.UpdateContact),
	)
}
