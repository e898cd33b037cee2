package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestUserCreate_WithoutPasswordCannotLogin(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	ctx := context.Background()

	resp, err := env.svc.User.Create(ctx, &dto.CreateUserRequest{
		Username: "trainer7",
		Email:    "t7@example.com",
		Role:     "trainer",
	}, principal(admin))
	require.NoError(t, err)
	assert.Equal(t, "trainer", resp.Role)
	assert.True(t, resp.IsActiveFlag)

	stored, err := env.repo.User.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, unusablePassword, stored.PasswordHash)

	_, err = env.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "trainer7", Password: unusablePassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	ctx := context.Background()

	_, err := env.svc.User.Create(ctx, &dto.CreateUserRequest{Username: "root", Email: "x@example.com"}, principal(admin))
	assertFieldError(t, err, "username")

	_, err = env.svc.User.Create(ctx, &dto.CreateUserRequest{Username: "weak", Email: "w@example.com", Password: "123"}, principal(admin))
	assertFieldError(t, err, "password")
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	bob := env.user(t, "bob", model.RoleTrainee)
	env.user(t, "carol", model.RoleTrainee)
	ctx := context.Background()

	_, err := env.svc.User.Update(ctx, bob.ID, &dto.UpdateUserRequest{Username: strPtr("carol")}, principal(admin))
	assertFieldError(t, err, "username")

	resp, err := env.svc.User.Update(ctx, bob.ID, &dto.UpdateUserRequest{
		Role:        strPtr("trainer"),
		Expertise:   strPtr("Go"),
		Password:    strPtr(newPassword),
		Designation: strPtr("Engineer"),
	}, principal(admin))
	require.NoError(t, err)
	assert.Equal(t, "trainer", resp.Role)
	require.NotNil(t, resp.Expertise)
	assert.Equal(t, "Go", *resp.Expertise)

	_, err = env.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "bob", Password: newPassword})
	assert.NoError(t, err)

	_, err = env.svc.User.Update(ctx, admin.ID, &dto.UpdateUserRequest{IsActiveFlag: boolPtr(false)}, principal(admin))
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)

	_, err = env.svc.User.Update(ctx, 999, &dto.UpdateUserRequest{}, principal(admin))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserWrites_UsernameRace(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	bob := env.user(t, "bob", model.RoleTrainee)
	env.user(t, "carol", model.RoleTrainee)
	env.repo.User = staleUsernames{env.repo.User}
	ctx := context.Background()

	_, err := env.svc.User.Create(ctx, &dto.CreateUserRequest{Username: "carol", Email: "c2@example.com"}, principal(admin))
	assertFieldError(t, err, "username")

	_, err = env.svc.User.Update(ctx, bob.ID, &dto.UpdateUserRequest{Username: strPtr("carol")}, principal(admin))
	assertFieldError(t, err, "username")

	stored, err := env.repo.User.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", stored.Username)
}

func TestUserDelete_Deactivates(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	bob := env.user(t, "bob", model.RoleTrainee)
	ctx := context.Background()

	assert.ErrorIs(t, env.svc.User.Delete(ctx, admin.ID, principal(admin)), ErrCannotDeleteSelf)

	require.NoError(t, env.svc.User.Delete(ctx, bob.ID, principal(admin)))
	stored, err := env.repo.User.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActiveFlag)

	// repeated delete is a no-op
	require.NoError(t, env.svc.User.Delete(ctx, bob.ID, principal(admin)))
	assert.Equal(t, []string{"delete"}, env.auditActions(t))

	assert.ErrorIs(t, env.svc.User.Delete(ctx, 999, principal(admin)), ErrUserNotFound)
}

func TestUserList_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.user(t, "root", model.RoleAdmin)
	env.user(t, "t1", model.RoleTrainer)
	env.user(t, "s1", model.RoleTrainee)
	env.user(t, "s2", model.RoleTrainee)

	q := &dto.ListQuery{Filters: map[string]string{"role": "trainee"}, Ordering: "-username"}
	page, err := env.svc.User.List(context.Background(), q)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	require.Len(t, page.List, 2)
	assert.Equal(t, "s2", page.List[0].Username)
	assert.Equal(t, 20, page.PageSize)
}
