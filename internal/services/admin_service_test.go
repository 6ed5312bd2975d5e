package services

import (
	"testing"

	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminFixture(t *testing.T) (AdminService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository(), repositories.NewProjectRepository())
	return svc, db
}

func TestAdminListUsersExcludesAdmins(t *testing.T) {
	svc, db := newAdminFixture(t)
	seedUser(t, db, "jane", models.UserRoleCreative, true)
	seedUser(t, db, "acme", models.UserRoleClient, true)
	seedUser(t, db, "root", models.UserRoleAdmin, true)

	users, err := svc.ListUsers(db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, models.UserRoleAdmin, u.Role)
	}
}

func TestAdminUpdateUserOverrides(t *testing.T) {
	svc, db := newAdminFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, false)

	role := models.UserRoleClient
	verified := true
	updated, err := svc.UpdateUser(db, user.ID, &dto.AdminUpdateUserRequest{
		Role:       &role,
		IsVerified: &verified,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, updated.Role)
	assert.True(t, updated.IsVerified)

	_, err = svc.UpdateUser(db, "no-such-id", &dto.AdminUpdateUserRequest{Role: &role})
	requireAppError(t, err, 404)
}

func TestAdminResetUserPassword(t *testing.T) {
	svc, db := newAdminFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	_, err := svc.ResetUserPassword(db, user.ID, "abc")
	requireAppError(t, err, 400)

	msg, err := svc.ResetUserPassword(db, user.ID, "brand-new-pass")
	require.NoError(t, err)
	assert.Contains(t, msg, "jane")

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("brand-new-pass", stored.PasswordHash))
}

func TestAdminDeleteUser(t *testing.T) {
	svc, db := newAdminFixture(t)
	user := seedUser(t, db, "jane", models.UserRoleCreative, true)

	require.NoError(t, svc.DeleteUser(db, user.ID))

	err := svc.DeleteUser(db, user.ID)
	requireAppError(t, err, 404)
}

func TestAdminProjectOperations(t *testing.T) {
	svc, db := newAdminFixture(t)
	client := seedUser(t, db, "acme", models.UserRoleClient, true)

	project := &models.Project{
		Title:       "Brand identity",
		Description: "A brief.",
		OwnerID:     client.ID,
		Status:      models.ProjectStatusOpen,
	}
	require.NoError(t, db.Create(project).Error)

	projects, err := svc.ListProjects(db)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	// The owner comes populated for the admin view.
	require.NotNil(t, projects[0].Owner)
	assert.Equal(t, "acme", projects[0].Owner.Username)

	require.NoError(t, svc.DeleteProject(db, project.ID))

	err = svc.DeleteProject(db, project.ID)
	requireAppError(t, err, 404)
}
