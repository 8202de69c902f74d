package main

import (
	"context"
	"fmt"
	"log"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func strPtr(s string) *string { return &s }

func main() {
	fmt.Println("seeding portfolio content...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	aboutRepo := persistence.NewPostgresAboutMeRepo(pool, appLogger)
	if _, err := aboutRepo.Upsert(ctx, &aboutme.AboutMe{
		Title:       "Backend Engineer",
		Description: "I build services in Go and PostgreSQL.",
	}); err != nil {
		log.Fatalf("cannot seed about me: %v", err)
	}

	contactRepo := persistence.NewPostgresContactRepo(pool, appLogger)
	if _, err := contactRepo.Upsert(ctx, &contact.Contact{
		Email:     "hello@example.com",
		GithubURL: strPtr("https://github.com/example"),
		Location:  strPtr("Ho Chi Minh City"),
	}); err != nil {
		log.Fatalf("cannot seed contact: %v", err)
	}

	// Collections are only seeded into empty tables so reruns stay harmless.
	skillRepo := persistence.NewPostgresSkillRepo(pool, appLogger)
	skills, err := skillRepo.List(ctx)
	if err != nil {
		log.Fatalf("cannot list skills: %v", err)
	}
	if len(skills) == 0 {
		for _, s := range []skill.Skill{
			{Name: "Go", Level: "Advanced", Category: "Programming"},
			{Name: "TypeScript", Level: "Intermediate", Category: "Programming"},
			{Name: "PostgreSQL", Level: "Advanced", Category: "Databases"},
			{Name: "Kafka", Level: "Intermediate", Category: "Infrastructure"},
		} {
			if _, err := skillRepo.Create(ctx, &s); err != nil {
				log.Fatalf("cannot seed skill %s: %v", s.Name, err)
			}
		}
	}

	projectRepo := persistence.NewPostgresProjectRepo(pool, appLogger)
	projects, err := projectRepo.List(ctx)
	if err != nil {
		log.Fatalf("cannot list projects: %v", err)
	}
	if len(projects) == 0 {
		if _, err := projectRepo.Create(ctx, &project.Project{
			Title:        "Portfolio API",
			Description:  "The service behind this site.",
			Technologies: "Go, Gin, PostgreSQL, Redis, Kafka",
			GithubURL:    strPtr("https://github.com/example/portfolio"),
			IsFeatured:   true,
		}); err != nil {
			log.Fatalf("cannot seed project: %v", err)
		}
	}

	fmt.Println("seeded portfolio content successfully!")
}
