package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
)

func TestUserList_ExcludesAdministrators(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "admin", models.RoleAdministrator)
	f.seedUser(t, "alice", models.RoleRegisterUser)
	f.seedUser(t, "bob", models.RoleRegisterUser)

	users, err := f.users.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, string(models.RoleRegisterUser), u.Role)
	}
}

func TestUserGet_HidesAdministrators(t *testing.T) {
	f := newFixture()
	admin := f.seedUser(t, "admin", models.RoleAdministrator)
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)

	got, err := f.users.Get(alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = f.users.Get(admin.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserCreate_ValidatesRoleAndUniqueness(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "alice", models.RoleRegisterUser)

	_, err := f.users.Create(dto.CreateUserRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = f.users.Create(dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret!",
		Role:     "SuperUser",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	user, err := f.users.Create(dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRegisterUser, user.Role)
	assert.Empty(t, user.Password)
}

func TestUserUpdate_PatchesFields(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)

	email := "new@example.com"
	role := string(models.RoleAdministrator)
	updated, err := f.users.Update(alice.UserID, dto.UpdateUserRequest{
		Email: &email,
		Role:  &role,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, models.RoleAdministrator, updated.Role)
}

func TestUserDelete(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t, "alice", models.RoleRegisterUser)

	require.NoError(t, f.users.Delete(alice.UserID))
	assert.ErrorIs(t, f.users.Delete(alice.UserID), ErrUserNotFound)
}
