package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

func TestBatchCalendar(t *testing.T) {
	env := newTestEnv(t)
	admin := env.user(t, "root", model.RoleAdmin)
	lead := env.user(t, "lead", model.RoleTrainer)
	helper := env.user(t, "helper", model.RoleTrainer)
	b := env.batch(t, env.program(t, "Go Basics").ID, "Spring")
	ctx := context.Background()

	_, err := env.svc.Batch.AssignTrainer(ctx, &dto.CreateBatchTrainerRequest{BatchID: b.ID, TrainerID: helper.ID}, principal(admin))
	require.NoError(t, err)
	_, err = env.svc.Batch.AssignTrainer(ctx, &dto.CreateBatchTrainerRequest{BatchID: b.ID, TrainerID: lead.ID, IsLead: true}, principal(admin))
	require.NoError(t, err)

	body, filename, err := env.svc.Calendar.BatchCalendar(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("batch_%d.ics", b.ID), filename)

	cal, err := ics.ParseCalendar(strings.NewReader(body))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "Spring (Go Basics)", ev.GetProperty(ics.ComponentPropertySummary).Value)
	desc := ev.GetProperty(ics.ComponentPropertyDescription).Value
	assert.Contains(t, desc, "scheduled")
	assert.Contains(t, desc, "lead (lead)")
	assert.Less(t, strings.Index(desc, "lead"), strings.Index(desc, "helper"))

	assert.Equal(t, "20250303", ev.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250308", ev.GetProperty(ics.ComponentPropertyDtEnd).Value)
}

func TestBatchCalendar_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Calendar.BatchCalendar(ctx, 404)
	assert.ErrorIs(t, err, ErrBatchNotFound)

	undated := &model.Batch{Name: "TBD", ProgramID: env.program(t, "Go").ID, Status: model.BatchScheduled}
	require.NoError(t, env.repo.Batch.Create(ctx, undated))
	_, _, err = env.svc.Calendar.BatchCalendar(ctx, undated.ID)
	assert.ErrorIs(t, err, ErrBatchNoStartDate)
}
