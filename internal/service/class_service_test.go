package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestClassCrud(t *testing.T) {
	env := newTestEnv(t)
	coach := env.user(t, "coach", model.RoleTrainer)
	ctx := context.Background()

	c, err := env.svc.Class.Create(ctx, &dto.CreateClassRequest{
		Name:           "Intro",
		TrainerName:    "Coach",
		ClassTimings:   "Mon 10:00",
		GoogleMeetLink: strPtr("https://meet.google.com/abc-defg-hij"),
	}, principal(coach))
	require.NoError(t, err)
	require.NotNil(t, c.CreatedBy)
	assert.Equal(t, coach.ID, *c.CreatedBy)
	assert.True(t, c.IsActive)

	got, err := env.svc.Class.Update(ctx, c.ID, &dto.UpdateClassRequest{IsActive: boolPtr(false)}, principal(coach))
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Mon 10:00", got.ClassTimings)

	page, err := env.svc.Class.List(ctx, &dto.ListQuery{Search: "intro"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	require.NoError(t, env.svc.Class.Delete(ctx, c.ID, principal(coach)))
	_, err = env.svc.Class.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrClassNotFound)

	assert.Equal(t, []string{"create", "update", "delete"}, env.auditActions(t))
}

func TestAuditLogService(t *testing.T) {
	env := newTestEnv(t)
	coach := env.user(t, "coach", model.RoleTrainer)
	ctx := context.Background()

	_, err := env.svc.Class.Create(ctx, &dto.CreateClassRequest{Name: "A", TrainerName: "B", ClassTimings: "C"}, principal(coach))
	require.NoError(t, err)

	page, err := env.svc.AuditLog.List(ctx, &dto.ListQuery{Filters: map[string]string{"table_name": "classes"}})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	entry := page.List[0]
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "127.0.0.1", *entry.IPAddress)

	got, err := env.svc.AuditLog.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "create", got.Action)

	_, err = env.svc.AuditLog.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)

	_, err = env.svc.AuditLog.List(ctx, &dto.ListQuery{Filters: map[string]string{"user_id": "abc"}})
	assertFieldError(t, err, "user_id")
}
