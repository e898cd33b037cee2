package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestBatchCreate(t *testing.T) {
	env := newTestEnv(t)
	trainer := env.user(t, "coach", model.RoleTrainer)
	p := env.program(t, "Go")
	ctx := context.Background()

	b, err := env.svc.Batch.Create(ctx, &dto.CreateBatchRequest{
		Name:      "Spring",
		ProgramID: p.ID,
		StartDate: strPtr("2025-04-01"),
		EndDate:   strPtr("2025-04-30"),
	}, principal(trainer))
	require.NoError(t, err)
	assert.Equal(t, model.BatchScheduled, b.Status)
	require.NotNil(t, b.CreatedBy)
	assert.Equal(t, trainer.ID, *b.CreatedBy)
	assert.Equal(t, "2025-04-01", dateString(b.StartDate))

	_, err = env.svc.Batch.Create(ctx, &dto.CreateBatchRequest{
		Name:      "Backwards",
		ProgramID: p.ID,
		StartDate: strPtr("2025-04-30"),
		EndDate:   strPtr("2025-04-01"),
	}, principal(trainer))
	assertFieldError(t, err, "end_date")

	_, err = env.svc.Batch.Create(ctx, &dto.CreateBatchRequest{Name: "Lost", ProgramID: 404}, principal(trainer))
	assertFieldError(t, err, "program_id")
}

func TestBatchUpdate_SpanChecked(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	_, err := env.svc.Batch.Update(ctx, b.ID, &dto.UpdateBatchRequest{EndDate: strPtr("2025-01-01")}, principal(admin))
	assertFieldError(t, err, "end_date")

	got, err := env.svc.Batch.Update(ctx, b.ID, &dto.UpdateBatchRequest{Status: strPtr("running")}, principal(admin))
	require.NoError(t, err)
	assert.Equal(t, model.BatchRunning, got.Status)
	assert.Equal(t, "2025-03-07", dateString(got.EndDate))
}

func TestBatchTrainer_DuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	coach := env.user(t, "coach", model.RoleTrainer)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	bt, err := env.svc.Batch.AssignTrainer(ctx, &dto.CreateBatchTrainerRequest{BatchID: b.ID, TrainerID: coach.ID, IsLead: true}, principal(admin))
	require.NoError(t, err)
	assert.True(t, bt.IsLead)

	_, err = env.svc.Batch.AssignTrainer(ctx, &dto.CreateBatchTrainerRequest{BatchID: b.ID, TrainerID: coach.ID}, principal(admin))
	assertFieldError(t, err, "non_field_errors")

	// updating a row onto itself is not a duplicate
	_, err = env.svc.Batch.UpdateTrainer(ctx, bt.ID, &dto.UpdateBatchTrainerRequest{TrainerID: uintPtr(coach.ID), IsLead: boolPtr(false)}, principal(admin))
	require.NoError(t, err)

	_, err = env.svc.Batch.AssignTrainer(ctx, &dto.CreateBatchTrainerRequest{BatchID: b.ID, TrainerID: 999}, principal(admin))
	assertFieldError(t, err, "trainer_id")

	require.NoError(t, env.svc.Batch.RemoveTrainer(ctx, bt.ID, principal(admin)))
	_, err = env.svc.Batch.GetTrainer(ctx, bt.ID)
	assert.ErrorIs(t, err, ErrBatchTrainerNotFound)
}

func TestBatchTrainee_Scoping(t *testing.T) {
	env := newTestEnv(t)
	coach := env.user(t, "coach", model.RoleTrainer)
	alice := env.user(t, "alice", model.RoleTrainee)
	bob := env.user(t, "bob", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	mine, err := env.svc.Batch.Enroll(ctx, &dto.CreateBatchTraineeRequest{BatchID: b.ID, TraineeID: bob.ID}, principal(alice))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, mine.TraineeID, "trainees enroll themselves")
	assert.Equal(t, model.EnrollmentEnrolled, mine.Status)

	theirs, err := env.svc.Batch.Enroll(ctx, &dto.CreateBatchTraineeRequest{BatchID: b.ID, TraineeID: bob.ID, Rating: intPtr(4)}, principal(coach))
	require.NoError(t, err)
	assert.Equal(t, bob.ID, theirs.TraineeID)

	page, err := env.svc.Batch.ListTrainees(ctx, &dto.ListQuery{}, principal(alice))
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = env.svc.Batch.ListTrainees(ctx, &dto.ListQuery{}, principal(coach))
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	_, err = env.svc.Batch.GetTrainee(ctx, theirs.ID, principal(alice))
	assert.ErrorIs(t, err, ErrBatchTraineeNotFound)
	_, err = env.svc.Batch.UpdateTrainee(ctx, theirs.ID, &dto.UpdateBatchTraineeRequest{Status: strPtr("dropped")}, principal(alice))
	assert.ErrorIs(t, err, ErrBatchTraineeNotFound)
	assert.ErrorIs(t, env.svc.Batch.RemoveTrainee(ctx, theirs.ID, principal(alice)), ErrBatchTraineeNotFound)

	_, err = env.svc.Batch.Enroll(ctx, &dto.CreateBatchTraineeRequest{BatchID: b.ID, TraineeID: bob.ID}, principal(coach))
	assertFieldError(t, err, "non_field_errors")

	_, err = env.svc.Batch.Enroll(ctx, &dto.CreateBatchTraineeRequest{BatchID: b.ID}, principal(coach))
	assertFieldError(t, err, "trainee_id")
}

func TestBatchDelete_Cascades(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	alice := env.user(t, "alice", model.RoleTrainee)
	b := env.batch(t, env.program(t, "Go").ID, "B1")
	ctx := context.Background()

	_, err := env.svc.Batch.Enroll(ctx, &dto.CreateBatchTraineeRequest{BatchID: b.ID, TraineeID: alice.ID}, principal(admin))
	require.NoError(t, err)
	_, err = env.svc.Progress.Create(ctx, &dto.CreateProgressRequest{BatchID: b.ID}, principal(alice))
	require.NoError(t, err)

	require.NoError(t, env.svc.Batch.Delete(ctx, b.ID, principal(admin)))

	var n int64
	require.NoError(t, env.db.Model(&model.BatchTrainee{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, env.db.Model(&model.ProgressRecord{}).Count(&n).Error)
	assert.Zero(t, n)

	assert.ErrorIs(t, env.svc.Batch.Delete(ctx, b.ID, principal(admin)), ErrBatchNotFound)
}
