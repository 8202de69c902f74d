package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/patch"
)

type PortfolioRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	aboutRepo   aboutme.Repository
	contactRepo contact.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
}

func (s *PortfolioRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.testLogger = logger.NewNop()

	s.aboutRepo = NewPostgresAboutMeRepo(s.dbPool, s.testLogger)
	s.contactRepo = NewPostgresContactRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
}

func (s *PortfolioRepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(),
		`TRUNCATE about_me, skills, projects, contact RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PortfolioRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPortfolioRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PortfolioRepoIntegrationTestSuite))
}

func (s *PortfolioRepoIntegrationTestSuite) countRows(table string) int {
	var n int
	s.Require().NoError(s.dbPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func strPtr(v string) *string { return &v }

func (s *PortfolioRepoIntegrationTestSuite) Test_AboutMe_GetOnEmptyTableIsAbsent() {
	got, found, err := s.aboutRepo.Get(context.Background())

	s.NoError(err)
	s.False(found)
	s.Nil(got)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_AboutMe_UpsertCreatesThenUpdatesSameRow() {
	ctx := context.Background()

	first, err := s.aboutRepo.Upsert(ctx, &aboutme.AboutMe{
		Title:           "Engineer",
		Description:     "Builds things",
		ProfileImageURL: strPtr("https://img.example.com/me.png"),
	})
	s.Require().NoError(err)
	s.NotZero(first.ID)

	second, err := s.aboutRepo.Upsert(ctx, &aboutme.AboutMe{
		Title:       "Senior Engineer",
		Description: "Builds more things",
	})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("Senior Engineer", second.Title)
	s.Nil(second.ProfileImageURL, "omitted optional field is cleared on upsert")
	s.False(second.UpdatedAt.Before(first.UpdatedAt))
	s.Equal(1, s.countRows("about_me"))

	got, found, err := s.aboutRepo.Get(ctx)
	s.NoError(err)
	s.True(found)
	s.Equal(second.Title, got.Title)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_AboutMe_ConcurrentUpsertsOnEmptyTableKeepOneRow() {
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.aboutRepo.Upsert(ctx, &aboutme.AboutMe{Title: "t", Description: "d"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(1, s.countRows("about_me"))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_AboutMe_MultipleRowsReadsAndUpdatesLowestID() {
	ctx := context.Background()
	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO about_me (title, description) VALUES ('first', 'a'), ('second', 'b')`)
	s.Require().NoError(err)

	got, found, err := s.aboutRepo.Get(ctx)
	s.Require().NoError(err)
	s.True(found)
	s.Equal("first", got.Title)

	updated, err := s.aboutRepo.Upsert(ctx, &aboutme.AboutMe{Title: "replaced", Description: "c"})
	s.Require().NoError(err)
	s.Equal(got.ID, updated.ID)

	var secondTitle string
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT title FROM about_me ORDER BY id DESC LIMIT 1`).Scan(&secondTitle))
	s.Equal("second", secondTitle)
	s.Equal(2, s.countRows("about_me"))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Contact_UpsertIsIdempotentOnCardinality() {
	ctx := context.Background()

	_, found, err := s.contactRepo.Get(ctx)
	s.NoError(err)
	s.False(found)

	in := &contact.Contact{Email: "me@example.com", Location: strPtr("Hanoi")}
	first, err := s.contactRepo.Upsert(ctx, in)
	s.Require().NoError(err)
	second, err := s.contactRepo.Upsert(ctx, in)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("Hanoi", *second.Location)
	s.Nil(second.Phone)
	s.Equal(1, s.countRows("contact"))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_EmptyListIsNotAbsent() {
	skills, err := s.skillRepo.List(context.Background())

	s.NoError(err)
	s.NotNil(skills)
	s.Empty(skills)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_ListOrdering() {
	ctx := context.Background()
	for _, in := range []skill.Skill{
		{Name: "React", Level: "Advanced", Category: "Frontend"},
		{Name: "Go", Level: "Expert", Category: "Backend"},
		{Name: "zig", Level: "Beginner", Category: "backend"},
		{Name: "C#", Level: "Intermediate", Category: "Backend"},
		{Name: "Go", Level: "Advanced", Category: "Backend"},
	} {
		_, err := s.skillRepo.Create(ctx, &in)
		s.Require().NoError(err)
	}

	skills, err := s.skillRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(skills, 5)

	type key struct{ category, name, level string }
	got := make([]key, 0, len(skills))
	for _, sk := range skills {
		got = append(got, key{sk.Category, sk.Name, sk.Level})
	}
	s.Equal([]key{
		{"Backend", "C#", "Intermediate"},
		{"Backend", "Go", "Expert"},
		{"Backend", "Go", "Advanced"},
		{"Frontend", "React", "Advanced"},
		{"backend", "zig", "Beginner"},
	}, got)
	s.True(skill.IsSorted(skills))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_PartialUpdatePreservesOmittedFields() {
	ctx := context.Background()
	created, err := s.skillRepo.Create(ctx, &skill.Skill{Name: "Go", Level: "Intermediate", Category: "Backend"})
	s.Require().NoError(err)

	updated, err := s.skillRepo.Update(ctx, created.ID, skill.Patch{Level: patch.Some("Expert")})
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.Equal("Go", updated.Name)
	s.Equal("Expert", updated.Level)
	s.Equal("Backend", updated.Category)
	s.True(created.CreatedAt.Equal(updated.CreatedAt))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_EmptyPatchReturnsRowUnchanged() {
	ctx := context.Background()
	created, err := s.skillRepo.Create(ctx, &skill.Skill{Name: "Go", Level: "Expert", Category: "Backend"})
	s.Require().NoError(err)

	got, err := s.skillRepo.Update(ctx, created.ID, skill.Patch{})
	s.Require().NoError(err)
	s.Equal(created, got)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_UpdateMissingIDIsNotFound() {
	ctx := context.Background()

	for _, p := range []skill.Patch{{Name: patch.Some("x")}, {}} {
		_, err := s.skillRepo.Update(ctx, 999999, p)

		s.Require().Error(err)
		s.ErrorIs(err, apperror.ErrNotFound)
		s.Contains(err.Error(), "999999")
	}
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Skills_DeleteIsIdempotentAndIsolated() {
	ctx := context.Background()
	keep, err := s.skillRepo.Create(ctx, &skill.Skill{Name: "Go", Level: "Expert", Category: "Backend"})
	s.Require().NoError(err)
	drop, err := s.skillRepo.Create(ctx, &skill.Skill{Name: "PHP", Level: "Beginner", Category: "Backend"})
	s.Require().NoError(err)

	s.NoError(s.skillRepo.Delete(ctx, drop.ID))
	s.NoError(s.skillRepo.Delete(ctx, drop.ID))
	s.NoError(s.skillRepo.Delete(ctx, 424242))

	skills, err := s.skillRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(skills, 1)
	s.Equal(keep.ID, skills[0].ID)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Projects_CreateAppliesDefaults() {
	created, err := s.projectRepo.Create(context.Background(), &project.Project{
		Title:        "Portfolio",
		Description:  "This site",
		Technologies: "Go, PostgreSQL",
	})
	s.Require().NoError(err)

	s.NotZero(created.ID)
	s.False(created.IsFeatured)
	s.Nil(created.ProjectURL)
	s.Nil(created.GithubURL)
	s.Nil(created.ImageURL)
	s.False(created.CreatedAt.IsZero())
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Projects_ListOrdering() {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	insert := func(title string, featured bool, createdAt time.Time) int64 {
		p, err := s.projectRepo.Create(ctx, &project.Project{
			Title: title, Description: "d", Technologies: "Go", IsFeatured: featured,
		})
		s.Require().NoError(err)
		_, err = s.dbPool.Exec(ctx, `UPDATE projects SET created_at = $1 WHERE id = $2`, createdAt, p.ID)
		s.Require().NoError(err)
		return p.ID
	}

	oldPlain := insert("old-plain", false, base)
	newPlain := insert("new-plain", false, base.Add(48*time.Hour))
	oldFeatured := insert("old-featured", true, base)
	tieA := insert("tie-a", true, base.Add(24*time.Hour))
	tieB := insert("tie-b", true, base.Add(24*time.Hour))

	projects, err := s.projectRepo.List(ctx)
	s.Require().NoError(err)

	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	s.Equal([]int64{tieA, tieB, oldFeatured, newPlain, oldPlain}, ids)
	s.True(project.IsSorted(projects))
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Projects_PartialUpdateClearsAndKeeps() {
	ctx := context.Background()
	created, err := s.projectRepo.Create(ctx, &project.Project{
		Title:        "API",
		Description:  "REST API",
		Technologies: "Go",
		ProjectURL:   strPtr("https://api.example.com"),
		GithubURL:    strPtr("https://github.com/example/api"),
		IsFeatured:   true,
	})
	s.Require().NoError(err)

	updated, err := s.projectRepo.Update(ctx, created.ID, project.Patch{
		Title:      patch.Some("API v2"),
		ProjectURL: patch.Clear[string](),
	})
	s.Require().NoError(err)

	s.Equal("API v2", updated.Title)
	s.Equal("REST API", updated.Description)
	s.Nil(updated.ProjectURL)
	s.Require().NotNil(updated.GithubURL)
	s.Equal("https://github.com/example/api", *updated.GithubURL)
	s.True(updated.IsFeatured)

	unfeatured, err := s.projectRepo.Update(ctx, created.ID, project.Patch{IsFeatured: patch.Some(false)})
	s.Require().NoError(err)
	s.False(unfeatured.IsFeatured)
	s.Equal("API v2", unfeatured.Title)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Projects_UpdateMissingIDIsNotFound() {
	_, err := s.projectRepo.Update(context.Background(), 999999, project.Patch{Title: patch.Some("x")})

	s.ErrorIs(err, apperror.ErrNotFound)
	s.Contains(err.Error(), "project with id '999999' was not found")
}
