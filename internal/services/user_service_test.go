package services

import (
	"context"
	"testing"

	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserFixture(t *testing.T) (UserService, *fakeEmbedder, *gorm.DB) {
	db := setupTestDB(t)
	embedder := &fakeEmbedder{}
	generator := &fakeGenerator{text: "Generated profile description."}
	svc := NewUserService(repositories.NewUserRepository(), embedder, generator)
	return svc, embedder, db
}

func TestGetProfile(t *testing.T) {
	svc, _, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", profile.Username)
	assert.Empty(t, profile.Token)

	_, err = svc.GetProfile(db, "no-such-id")
	requireAppError(t, err, 404)
}

func TestUpdateProfileBasics(t *testing.T) {
	svc, _, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	name := "Jane Doe"
	headline := "Brand designer"
	profile, err := svc.UpdateProfile(context.Background(), db, user.ID, &dto.UpdateProfileRequest{
		Name:     &name,
		Headline: &headline,
		Skills:   []string{"branding", "illustration"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Brand designer", profile.Headline)
	assert.Equal(t, []string{"branding", "illustration"}, profile.Skills)
	// Profile updates refresh the session token.
	assert.NotEmpty(t, profile.Token)
}

func TestUpdateProfileEmailFrozenWhenVerified(t *testing.T) {
	svc, _, db := newUserFixture(t)
	verified := seedUser(t, db, "jane", models.UserRoleCreative, true)
	unverified := seedUser(t, db, "john", models.UserRoleCreative, false)

	newEmail := "fresh@example.com"
	_, err := svc.UpdateProfile(context.Background(), db, verified.ID, &dto.UpdateProfileRequest{Email: &newEmail})
	requireAppError(t, err, 400)

	profile, err := svc.UpdateProfile(context.Background(), db, unverified.ID, &dto.UpdateProfileRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", profile.Email)
}

func TestUpdateProfileEmbedsDescription(t *testing.T) {
	svc, embedder, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	desc := "I design brand identities for food businesses."
	_, err := svc.UpdateProfile(context.Background(), db, user.ID, &dto.UpdateProfileRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, 1, embedder.calls)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEmpty(t, stored.ProfileEmbedding)

	// Same description again: no change, no re-embed.
	_, err = svc.UpdateProfile(context.Background(), db, user.ID, &dto.UpdateProfileRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, 1, embedder.calls)
}

func TestUpdateProfileToleratesEmbeddingFailure(t *testing.T) {
	svc, embedder, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)
	embedder.err = assert.AnError

	desc := "New description text."
	profile, err := svc.UpdateProfile(context.Background(), db, user.ID, &dto.UpdateProfileRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "New description text.", profile.Description)

	// Save went through; the vector just stays stale until the next edit.
	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "New description text.", stored.Description)
	assert.Empty(t, stored.ProfileEmbedding)
}

func TestChangePassword(t *testing.T) {
	svc, _, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	err := svc.ChangePassword(db, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
		ConfirmPassword: "different",
	})
	requireAppError(t, err, 400)

	err = svc.ChangePassword(db, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	requireAppError(t, err, 401)

	require.NoError(t, svc.ChangePassword(db, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("newsecret", stored.PasswordHash))
}

func TestGetPublicProfileIncludesPortfolio(t *testing.T) {
	svc, _, db := newUserFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	require.NoError(t, db.Create(&models.PortfolioItem{
		UserID: user.ID,
		Title:  "Roastery rebrand",
		URL:    "https://example.com/work/roastery",
	}).Error)

	public, err := svc.GetPublicProfile(db, user.ID)
	require.NoError(t, err)
	require.Len(t, public.Portfolio, 1)
	assert.Equal(t, "Roastery rebrand", public.Portfolio[0].Title)
}
