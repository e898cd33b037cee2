package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

func TestRecord_WritesRow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:audit_ok?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	rec := audit.NewRecorder(repository.NewAuditLogRepo(db), zap.NewNop())
	actor := audit.ActorFrom(access.Principal{UserID: 7, IP: "10.0.0.1", UserAgent: "curl/8"})

	rec.Record(context.Background(), audit.ActionUpdate, audit.Entity{Table: "programs", ID: 3},
		audit.Snapshot{"name": "old"}, audit.Snapshot{"name": "new"}, actor)

	var row model.AuditLog
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "update", row.Action)
	assert.Equal(t, "programs", row.Table)
	require.NotNil(t, row.RecordID)
	assert.Equal(t, uint(3), *row.RecordID)
	require.NotNil(t, row.UserID)
	assert.Equal(t, uint(7), *row.UserID)
	require.NotNil(t, row.IPAddress)
	assert.Equal(t, "10.0.0.1", *row.IPAddress)

	var after map[string]string
	require.NoError(t, json.Unmarshal(row.NewValues, &after))
	assert.Equal(t, "new", after["name"])
}

func TestRecord_AnonymousActorStoresNull(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:audit_anon?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	rec := audit.NewRecorder(repository.NewAuditLogRepo(db), zap.NewNop())
	rec.Record(context.Background(), audit.ActionPasswordResetRequested, audit.Entity{Table: "PasswordResetToken"},
		nil, audit.Snapshot{"email": "a@example.com"}, audit.Actor{})

	var row model.AuditLog
	require.NoError(t, db.First(&row).Error)
	assert.Nil(t, row.UserID)
	assert.Nil(t, row.RecordID)
	assert.Nil(t, row.IPAddress)
	assert.Empty(t, row.OldValues)
}

func TestRecord_SwallowsStoreFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "audit_logs"`).WillReturnError(errors.New("connection reset"))

	core, logs := observer.New(zap.WarnLevel)
	rec := audit.NewRecorder(repository.NewAuditLogRepo(db), zap.New(core))

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), audit.ActionDelete, audit.Entity{Table: "programs", ID: 1},
			audit.Snapshot{"name": "go"}, nil, audit.Actor{UserID: 1})
	})

	require.NoError(t, mock.ExpectationsWereMet())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit write failed", entry.Message)
	assert.Equal(t, "delete", entry.ContextMap()["action"])
}

func TestNop(t *testing.T) {
	var rec audit.Recorder = audit.Nop{}
	rec.Record(context.Background(), audit.ActionCreate, audit.Entity{}, nil, nil, audit.Actor{})
}
