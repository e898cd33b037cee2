package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestDesignationLinks(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	p := env.program(t, "Go")
	ctx := context.Background()

	d, err := env.svc.Designation.Create(ctx, &dto.CreateDesignationRequest{Name: "Backend"}, principal(admin))
	require.NoError(t, err)
	assert.True(t, d.IsActive)

	dp, err := env.svc.Designation.LinkProgram(ctx, &dto.CreateDesignationProgramRequest{DesignationID: d.ID, ProgramID: p.ID}, principal(admin))
	require.NoError(t, err)
	assert.True(t, dp.IsRequired)

	_, err = env.svc.Designation.LinkProgram(ctx, &dto.CreateDesignationProgramRequest{DesignationID: d.ID, ProgramID: p.ID}, principal(admin))
	assertFieldError(t, err, "non_field_errors")

	_, err = env.svc.Designation.LinkProgram(ctx, &dto.CreateDesignationProgramRequest{DesignationID: 99, ProgramID: p.ID}, principal(admin))
	assertFieldError(t, err, "designation_id")

	updated, err := env.svc.Designation.UpdateProgram(ctx, dp.ID, &dto.UpdateDesignationProgramRequest{IsRequired: boolPtr(false)}, principal(admin))
	require.NoError(t, err)
	assert.False(t, updated.IsRequired)
}

func TestTraineeDesignation_Assign(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	alice := env.user(t, "alice", model.RoleTrainee)
	ctx := context.Background()

	d, err := env.svc.Designation.Create(ctx, &dto.CreateDesignationRequest{Name: "Backend"}, principal(admin))
	require.NoError(t, err)

	svc := env.svc.Designation.(*designationService)
	svc.now = func() time.Time { return time.Date(2025, 5, 17, 15, 0, 0, 0, time.UTC) }

	td, err := svc.Assign(ctx, &dto.CreateTraineeDesignationRequest{TraineeID: alice.ID, DesignationID: d.ID}, principal(admin))
	require.NoError(t, err)
	require.NotNil(t, td.CreatedBy)
	assert.Equal(t, admin.ID, *td.CreatedBy)
	assert.Equal(t, "2025-05-17", dateString(&td.AssignedDate))

	_, err = svc.Assign(ctx, &dto.CreateTraineeDesignationRequest{TraineeID: alice.ID, DesignationID: d.ID}, principal(admin))
	assertFieldError(t, err, "non_field_errors")

	bob := env.user(t, "bob", model.RoleTrainee)
	_, err = svc.Assign(ctx, &dto.CreateTraineeDesignationRequest{TraineeID: bob.ID, DesignationID: d.ID, AssignedDate: strPtr("17/05/2025")}, principal(admin))
	assertFieldError(t, err, "assigned_date")

	require.NoError(t, svc.Delete(ctx, d.ID, principal(admin)))
	_, err = svc.GetAssignment(ctx, td.ID)
	assert.ErrorIs(t, err, ErrTraineeDesignationNotFound)
}
