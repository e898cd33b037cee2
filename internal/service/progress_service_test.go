package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestProgressCreate_TraineeIsForcedToSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", model.RoleTrainee)
	bob := env.user(t, "bob", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")

	pr, err := env.svc.Progress.Create(context.Background(), &dto.CreateProgressRequest{
		TraineeID:            bob.ID,
		BatchID:              b.ID,
		CompletionPercentage: 40,
		UpdatedBy:            uintPtr(bob.ID),
	}, principal(alice))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, pr.TraineeID)
	require.NotNil(t, pr.UpdatedBy)
	assert.Equal(t, alice.ID, *pr.UpdatedBy)
	assert.Equal(t, model.ProgressNotStarted, pr.Status)

	var entry model.AuditLog
	require.NoError(t, env.db.First(&entry).Error)
	assert.Equal(t, audit.ActionCreateProgress, entry.Action)
	assert.JSONEq(t, `{"status":"not_started","completion":40}`, string(entry.NewValues))
}

func TestProgressCreate_StaffPayloadPassesThrough(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	alice := env.user(t, "alice", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	pr, err := env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{TraineeID: alice.ID, BatchID: b.ID, Status: "in_progress"}, principal(admin))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, pr.TraineeID)
	assert.Nil(t, pr.UpdatedBy)

	_, err = env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{BatchID: b.ID}, principal(admin))
	assertFieldError(t, err, "trainee_id")

	_, err = env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{TraineeID: alice.ID, BatchID: b.ID, TopicID: uintPtr(77)}, principal(admin))
	assertFieldError(t, err, "topic_id")
}

func TestProgress_Scoping(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	coach := env.user(t, "coach", model.RoleTrainer)
	alice := env.user(t, "alice", model.RoleTrainee)
	bob := env.user(t, "bob", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	mine, err := env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{BatchID: b.ID}, principal(alice))
	require.NoError(t, err)
	theirs, err := env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{BatchID: b.ID}, principal(bob))
	require.NoError(t, err)

	page, err := env.svc.Progress.List(ctx, &dto.ListQuery{}, principal(alice))
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, mine.ID, page.List[0].ID)

	// trainers without the staff flag are scoped as well
	page, err = env.svc.Progress.List(ctx, &dto.ListQuery{}, principal(coach))
	require.NoError(t, err)
	assert.Empty(t, page.List)

	page, err = env.svc.Progress.List(ctx, &dto.ListQuery{}, principal(admin))
	require.NoError(t, err)
	assert.Len(t, page.List, 2)

	_, err = env.svc.Progress.Get(ctx, theirs.ID, principal(alice))
	assert.ErrorIs(t, err, ErrProgressNotFound)
	_, err = env.svc.Progress.Update(ctx, theirs.ID, &dto.UpdateProgressRequest{CompletionPercentage: intPtr(90)}, principal(alice))
	assert.ErrorIs(t, err, ErrProgressNotFound)
	assert.ErrorIs(t, env.svc.Progress.Delete(ctx, theirs.ID, principal(alice)), ErrProgressNotFound)
}

func TestProgressUpdate_StampsTrainee(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	alice := env.user(t, "alice", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	pr, err := env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{TraineeID: alice.ID, BatchID: b.ID}, principal(admin))
	require.NoError(t, err)
	require.Nil(t, pr.UpdatedBy)

	got, err := env.svc.Progress.Update(ctx, pr.ID, &dto.UpdateProgressRequest{
		Status:               strPtr("completed"),
		CompletionPercentage: intPtr(100),
	}, principal(alice))
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, alice.ID, *got.UpdatedBy)
	assert.Equal(t, 100, got.CompletionPercentage)

	require.NoError(t, env.svc.Progress.Delete(ctx, pr.ID, principal(alice)))
	assert.Equal(t, []string{
		audit.ActionCreateProgress, audit.ActionUpdateProgress, audit.ActionDeleteProgress,
	}, env.auditActions(t))
}
