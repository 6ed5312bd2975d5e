package services

import (
	"context"
	"encoding/json"
	"testing"

	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newSearchFixture(t *testing.T) (SearchService, *fakeEmbedder, *gorm.DB) {
	db := setupTestDB(t)
	embedder := &fakeEmbedder{}
	svc := NewSearchService(
		repositories.NewUserRepository(),
		repositories.NewProjectRepository(),
		embedder,
	)
	return svc, embedder, db
}

func mustEmbed(t *testing.T, vec []float32) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(vec)
	require.NoError(t, err)
	return datatypes.JSON(raw)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc, embedder, db := newSearchFixture(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchCreatives(context.Background(), db, query)
		requireAppError(t, err, 400)
		_, err = svc.SearchProjects(context.Background(), db, query)
		requireAppError(t, err, 400)
	}

	// Fails fast: the embedding service is never consulted.
	assert.Zero(t, embedder.calls)
}

func TestSearchCreativesRanksBySimilarity(t *testing.T) {
	svc, embedder, db := newSearchFixture(t)
	embedder.vec = []float32{1, 0}

	exact := seedUser(t, db, "exact", models.UserRoleCreative, true)
	near := seedUser(t, db, "near", models.UserRoleCreative, true)
	far := seedUser(t, db, "far", models.UserRoleCreative, true)
	// No embedding: invisible to search.
	seedUser(t, db, "invisible", models.UserRoleCreative, true)
	// Client role: never a creative search result.
	client := seedUser(t, db, "client", models.UserRoleClient, true)

	require.NoError(t, db.Model(exact).Update("profile_embedding", mustEmbed(t, []float32{1, 0})).Error)
	require.NoError(t, db.Model(near).Update("profile_embedding", mustEmbed(t, []float32{0.9, 0.1})).Error)
	require.NoError(t, db.Model(far).Update("profile_embedding", mustEmbed(t, []float32{0, 1})).Error)
	require.NoError(t, db.Model(client).Update("profile_embedding", mustEmbed(t, []float32{1, 0})).Error)

	results, err := svc.SearchCreatives(context.Background(), db, "brand designer")
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, exact.ID, results[0].ID)
	assert.Equal(t, near.ID, results[1].ID)
	assert.Equal(t, far.ID, results[2].ID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[1].Score, results[2].Score)
}

func TestSearchProjectsRanksBySimilarity(t *testing.T) {
	svc, embedder, db := newSearchFixture(t)
	embedder.vec = []float32{1, 0}

	client := seedUser(t, db, "client", models.UserRoleClient, true)

	seedProject := func(title string, vec []float32) *models.Project {
		p := &models.Project{
			Title:       title,
			Description: "Some brief.",
			OwnerID:     client.ID,
			Status:      models.ProjectStatusOpen,
		}
		if vec != nil {
			p.ProjectEmbedding = mustEmbed(t, vec)
		}
		require.NoError(t, db.Create(p).Error)
		return p
	}

	best := seedProject("Logo design", []float32{1, 0})
	second := seedProject("Poster design", []float32{0.8, 0.2})
	seedProject("Unsearchable", nil)

	results, err := svc.SearchProjects(context.Background(), db, "logo")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, best.ID, results[0].ID)
	assert.Equal(t, second.ID, results[1].ID)
}

func TestSearchUpstreamFailure(t *testing.T) {
	svc, embedder, db := newSearchFixture(t)
	embedder.err = assert.AnError

	_, err := svc.SearchCreatives(context.Background(), db, "anything")
	requireAppError(t, err, 500)
}
