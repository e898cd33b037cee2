package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

// ── helpers ──

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func mkUser(t *testing.T, repo *Repository, username string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		Role:         role,
		IsActiveFlag: true,
	}
	require.NoError(t, repo.User.Create(context.Background(), u))
	return u
}

func mkProgram(t *testing.T, repo *Repository, name string) *model.Program {
	t.Helper()
	p := &model.Program{Name: name, DurationDays: 10, IsActive: true}
	require.NoError(t, repo.Program.Create(context.Background(), p))
	return p
}

func mkBatch(t *testing.T, repo *Repository, programID uint, name string) *model.Batch {
	t.Helper()
	start := datatypes.Date(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	b := &model.Batch{Name: name, ProgramID: programID, StartDate: &start, Status: model.BatchScheduled, MaxCapacity: 10}
	require.NoError(t, repo.Batch.Create(context.Background(), b))
	return b
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

// ── list ──

func TestUserList_FilterSearchOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mkUser(t, repo, "carol", model.RoleTrainer)
	mkUser(t, repo, "alice", model.RoleTrainee)
	bob := mkUser(t, repo, "bob", model.RoleTrainee)
	bob.IsActiveFlag = false
	require.NoError(t, repo.User.Update(ctx, bob))

	users, total, err := repo.User.List(ctx, ListParams{Filters: map[string]string{"role": "trainee"}, Ordering: "username"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	users, total, err = repo.User.List(ctx, ListParams{Filters: map[string]string{"is_active_flag": "false"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "bob", users[0].Username)

	// search is case-insensitive and spans several columns
	users, _, err = repo.User.List(ctx, ListParams{Search: "CAR"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Username)

	users, _, err = repo.User.List(ctx, ListParams{Ordering: "-username"})
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "bob", "alice"}, []string{users[0].Username, users[1].Username, users[2].Username})
}

func TestList_IgnoresUnknownNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	mkUser(t, repo, "alice", model.RoleTrainee)
	mkUser(t, repo, "bob", model.RoleTrainer)

	users, total, err := repo.User.List(context.Background(), ListParams{
		Filters:  map[string]string{"password_hash": "x"},
		Ordering: "password_hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "alice", users[0].Username) // default order is id
}

func TestList_InvalidTypedFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	_, _, err := repo.User.List(context.Background(), ListParams{Filters: map[string]string{"is_active_flag": "maybe"}})
	fe, ok := apperrors.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "is_active_flag", fe.Field)
}

func TestList_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	for i := 0; i < 5; i++ {
		mkProgram(t, repo, fmt.Sprintf("p%d", i))
	}

	page, total, err := repo.Program.List(context.Background(), ListParams{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "p2", page[0].Name)
}

func TestList_Scope(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := mkUser(t, repo, "alice", model.RoleTrainee)
	bob := mkUser(t, repo, "bob", model.RoleTrainee)
	b := mkBatch(t, repo, mkProgram(t, repo, "go").ID, "b1")

	require.NoError(t, repo.Progress.Create(ctx, &model.ProgressRecord{TraineeID: alice.ID, BatchID: b.ID, Status: model.ProgressNotStarted}))
	require.NoError(t, repo.Progress.Create(ctx, &model.ProgressRecord{TraineeID: bob.ID, BatchID: b.ID, Status: model.ProgressNotStarted}))

	records, total, err := repo.Progress.List(ctx, ListParams{}, OwnedBy("trainee_id", alice.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, alice.ID, records[0].TraineeID)

	_, err = repo.Progress.GetByID(ctx, records[0].ID, OwnedBy("trainee_id", bob.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAuditLogList_DefaultNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	old := &model.AuditLog{Action: "create", Table: "programs", CreatedAt: time.Now().Add(-time.Hour)}
	recent := &model.AuditLog{Action: "delete", Table: "programs", CreatedAt: time.Now()}
	require.NoError(t, repo.AuditLog.Create(ctx, old))
	require.NoError(t, repo.AuditLog.Create(ctx, recent))

	logs, _, err := repo.AuditLog.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "delete", logs[0].Action)

	logs, _, err = repo.AuditLog.List(ctx, ListParams{Filters: map[string]string{"table_name": "programs", "action": "create"}})
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

// ── programs ──

func TestProgram_TopicsOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := mkProgram(t, repo, "go")
	for _, tp := range []model.ProgramTopic{
		{ProgramID: p.ID, TopicName: "third", TopicOrder: 3},
		{ProgramID: p.ID, TopicName: "first", TopicOrder: 1},
		{ProgramID: p.ID, TopicName: "second", TopicOrder: 2},
	} {
		tp := tp
		require.NoError(t, repo.Topic.Create(ctx, &tp))
	}

	got, err := repo.Program.GetWithTopics(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Topics, 3)
	assert.Equal(t, "first", got.Topics[0].TopicName)
	assert.Equal(t, "third", got.Topics[2].TopicName)

	list, _, err := repo.Program.ListWithTopics(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Topics[1].TopicName)
}

func TestProgram_UpdateDoesNotTouchTopics(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := mkProgram(t, repo, "go")
	require.NoError(t, repo.Topic.Create(ctx, &model.ProgramTopic{ProgramID: p.ID, TopicName: "intro", TopicOrder: 1}))

	loaded, err := repo.Program.GetWithTopics(ctx, p.ID)
	require.NoError(t, err)
	loaded.Name = "golang"
	loaded.Topics[0].TopicName = "changed in memory only"
	require.NoError(t, repo.Program.Update(ctx, loaded))

	topic, err := repo.Topic.GetByID(ctx, loaded.Topics[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "intro", topic.TopicName)
}

func TestProgram_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	trainee := mkUser(t, repo, "alice", model.RoleTrainee)
	trainer := mkUser(t, repo, "tom", model.RoleTrainer)
	p := mkProgram(t, repo, "go")
	other := mkProgram(t, repo, "rust")
	topic := &model.ProgramTopic{ProgramID: p.ID, TopicName: "intro"}
	require.NoError(t, repo.Topic.Create(ctx, topic))
	b := mkBatch(t, repo, p.ID, "b1")
	keep := mkBatch(t, repo, other.ID, "b2")

	require.NoError(t, repo.BatchTrainer.Create(ctx, &model.BatchTrainer{BatchID: b.ID, TrainerID: trainer.ID}))
	require.NoError(t, repo.BatchTrainee.Create(ctx, &model.BatchTrainee{BatchID: b.ID, TraineeID: trainee.ID, Status: model.EnrollmentEnrolled}))
	require.NoError(t, repo.BatchTrainee.Create(ctx, &model.BatchTrainee{BatchID: keep.ID, TraineeID: trainee.ID, Status: model.EnrollmentEnrolled}))
	require.NoError(t, repo.Progress.Create(ctx, &model.ProgressRecord{TraineeID: trainee.ID, BatchID: b.ID, TopicID: &topic.ID, Status: model.ProgressInProgress}))
	d := &model.Designation{Name: "backend", IsActive: true}
	require.NoError(t, repo.Designation.Create(ctx, d))
	require.NoError(t, repo.DesignationProgram.Create(ctx, &model.DesignationProgram{DesignationID: d.ID, ProgramID: p.ID}))

	require.NoError(t, repo.Program.Delete(ctx, p.ID))

	assert.Equal(t, int64(1), count(t, db, &model.Program{}))
	assert.Equal(t, int64(0), count(t, db, &model.ProgramTopic{}))
	assert.Equal(t, int64(1), count(t, db, &model.Batch{}))
	assert.Equal(t, int64(0), count(t, db, &model.BatchTrainer{}))
	assert.Equal(t, int64(1), count(t, db, &model.BatchTrainee{}))
	assert.Equal(t, int64(0), count(t, db, &model.ProgressRecord{}))
	assert.Equal(t, int64(0), count(t, db, &model.DesignationProgram{}))
	assert.Equal(t, int64(1), count(t, db, &model.Designation{}))
	assert.Equal(t, int64(2), count(t, db, &model.User{}))
}

// ── topics / batches / designations ──

func TestTopic_DeleteDetachesProgress(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	trainee := mkUser(t, repo, "alice", model.RoleTrainee)
	p := mkProgram(t, repo, "go")
	topic := &model.ProgramTopic{ProgramID: p.ID, TopicName: "intro"}
	require.NoError(t, repo.Topic.Create(ctx, topic))
	b := mkBatch(t, repo, p.ID, "b1")
	pr := &model.ProgressRecord{TraineeID: trainee.ID, BatchID: b.ID, TopicID: &topic.ID, Status: model.ProgressCompleted, CompletionPercentage: 100}
	require.NoError(t, repo.Progress.Create(ctx, pr))

	require.NoError(t, repo.Topic.Delete(ctx, topic.ID))

	got, err := repo.Progress.GetByID(ctx, pr.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TopicID)
	assert.Equal(t, 100, got.CompletionPercentage)
}

func TestBatch_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	trainee := mkUser(t, repo, "alice", model.RoleTrainee)
	trainer := mkUser(t, repo, "tom", model.RoleTrainer)
	p := mkProgram(t, repo, "go")
	b := mkBatch(t, repo, p.ID, "b1")
	require.NoError(t, repo.BatchTrainer.Create(ctx, &model.BatchTrainer{BatchID: b.ID, TrainerID: trainer.ID, IsLead: true}))
	require.NoError(t, repo.BatchTrainee.Create(ctx, &model.BatchTrainee{BatchID: b.ID, TraineeID: trainee.ID, Status: model.EnrollmentEnrolled}))
	require.NoError(t, repo.Progress.Create(ctx, &model.ProgressRecord{TraineeID: trainee.ID, BatchID: b.ID, Status: model.ProgressNotStarted}))

	require.NoError(t, repo.Batch.Delete(ctx, b.ID))

	assert.Equal(t, int64(0), count(t, db, &model.Batch{}))
	assert.Equal(t, int64(0), count(t, db, &model.BatchTrainer{}))
	assert.Equal(t, int64(0), count(t, db, &model.BatchTrainee{}))
	assert.Equal(t, int64(0), count(t, db, &model.ProgressRecord{}))
	assert.Equal(t, int64(1), count(t, db, &model.Program{}))
}

func TestBatch_GetForCalendar(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tom := mkUser(t, repo, "tom", model.RoleTrainer)
	ann := mkUser(t, repo, "ann", model.RoleTrainer)
	p := mkProgram(t, repo, "go")
	b := mkBatch(t, repo, p.ID, "b1")
	require.NoError(t, repo.BatchTrainer.Create(ctx, &model.BatchTrainer{BatchID: b.ID, TrainerID: tom.ID}))
	require.NoError(t, repo.BatchTrainer.Create(ctx, &model.BatchTrainer{BatchID: b.ID, TrainerID: ann.ID, IsLead: true}))

	got, trainers, err := repo.Batch.GetForCalendar(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Program)
	assert.Equal(t, "go", got.Program.Name)
	require.Len(t, trainers, 2)
	assert.Equal(t, "ann", trainers[0].Trainer.Username)
}

func TestLinked(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	trainer := mkUser(t, repo, "tom", model.RoleTrainer)
	b := mkBatch(t, repo, mkProgram(t, repo, "go").ID, "b1")
	link := &model.BatchTrainer{BatchID: b.ID, TrainerID: trainer.ID}
	require.NoError(t, repo.BatchTrainer.Create(ctx, link))

	linked, err := repo.BatchTrainer.Linked(ctx, b.ID, trainer.ID, 0)
	require.NoError(t, err)
	assert.True(t, linked)

	// the row itself does not count as a duplicate when updating it
	linked, err = repo.BatchTrainer.Linked(ctx, b.ID, trainer.ID, link.ID)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestDesignation_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	trainee := mkUser(t, repo, "alice", model.RoleTrainee)
	p := mkProgram(t, repo, "go")
	d := &model.Designation{Name: "backend", IsActive: true}
	require.NoError(t, repo.Designation.Create(ctx, d))
	require.NoError(t, repo.DesignationProgram.Create(ctx, &model.DesignationProgram{DesignationID: d.ID, ProgramID: p.ID, IsRequired: true}))
	require.NoError(t, repo.TraineeDesignation.Create(ctx, &model.TraineeDesignation{
		TraineeID: trainee.ID, DesignationID: d.ID, AssignedDate: datatypes.Date(time.Now()),
	}))

	require.NoError(t, repo.Designation.Delete(ctx, d.ID))

	assert.Equal(t, int64(0), count(t, db, &model.Designation{}))
	assert.Equal(t, int64(0), count(t, db, &model.DesignationProgram{}))
	assert.Equal(t, int64(0), count(t, db, &model.TraineeDesignation{}))
	assert.Equal(t, int64(1), count(t, db, &model.Program{}))
}

// ── password reset ──

func TestPasswordReset_RedeemOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	u := mkUser(t, repo, "alice", model.RoleTrainee)
	tok := &model.PasswordResetToken{UserID: u.ID, Token: "abc", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.PasswordReset.Create(ctx, tok))

	ok, err := repo.PasswordReset.Redeem(ctx, tok.ID, u.ID, "new-hash")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.PasswordReset.Redeem(ctx, tok.ID, u.ID, "second-hash")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.User.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)

	stored, err := repo.PasswordReset.GetByToken(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, stored.IsUsed)
}

func TestUser_Lookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := mkUser(t, repo, "alice", model.RoleTrainee)
	bob := mkUser(t, repo, "bob", model.RoleTrainee)

	taken, err := repo.User.UsernameTaken(ctx, "alice", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.User.UsernameTaken(ctx, "alice", alice.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	dup := &model.User{Username: "alice", Email: "a2@example.com", PasswordHash: "x", Role: model.RoleTrainee}
	assert.ErrorIs(t, repo.User.Create(ctx, dup), gorm.ErrDuplicatedKey)

	got, err := repo.User.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)

	_, err = repo.User.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	users, err := repo.User.ListByIDs(ctx, []uint{bob.ID, alice.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	exists, err := repo.User.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
