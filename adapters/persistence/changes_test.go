package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio/internal/domain/aboutme"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/skill"
	"github.com/khoahotran/portfolio/pkg/patch"
)

func TestSkillChanges_OnlyPresentKeys(t *testing.T) {
	assert.Empty(t, skillChanges(skill.Patch{}))
	assert.Equal(t, map[string]any{"level": "Expert"}, skillChanges(skill.Patch{Level: patch.Some("Expert")}))
}

func TestProjectChanges_NullClearsURL(t *testing.T) {
	changes := projectChanges(project.Patch{
		GithubURL:  patch.Clear[string](),
		IsFeatured: patch.Some(false),
	})

	assert.Len(t, changes, 2)
	assert.Contains(t, changes, "github_url")
	assert.Nil(t, changes["github_url"])
	assert.Equal(t, false, changes["is_featured"])
}

func TestTable_SetMapCoversWriteColumns(t *testing.T) {
	img := "https://img.example.com/me.png"
	set, err := aboutMeTable.setMap(&aboutme.AboutMe{Title: "t", Description: "d", ProfileImageURL: &img})

	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"title":             "t",
		"description":       "d",
		"profile_image_url": &img,
	}, set)
	assert.Equal(t, "RETURNING id, title, description, profile_image_url, updated_at", aboutMeTable.returning())
}

func TestListQueriesUseOrdering(t *testing.T) {
	query, _, err := psql.Select(skillTable.columns...).From(skillTable.name).OrderBy(skill.OrderBy...).ToSql()

	assert.NoError(t, err)
	assert.Equal(t,
		`SELECT id, name, level, category, created_at FROM skills ORDER BY category COLLATE "C" ASC, name COLLATE "C" ASC, id ASC`,
		query)
}
