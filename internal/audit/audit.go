// Package audit writes the append-only audit trail.
//
// Services call Record after a successful write. A failed audit insert is
// logged and dropped so that the business operation still succeeds.
package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// Event names written to audit_logs.action.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ActionCreateProgress = "create_progress"
	ActionUpdateProgress = "update_progress"
	ActionDeleteProgress = "delete_progress"

	ActionUserRegistered           = "USER_REGISTERED"
	ActionPasswordResetRequested   = "PASSWORD_RESET_REQUESTED"
	ActionPasswordResetEmailFailed = "PASSWORD_RESET_EMAIL_FAILED"
	ActionPasswordResetCompleted   = "PASSWORD_RESET_COMPLETED"
)

// Snapshot is the JSON object stored in old_values / new_values.
type Snapshot map[string]interface{}

// Entity identifies the audited row.
type Entity struct {
	Table string
	ID    uint
}

// Actor is who triggered the event. A zero UserID stores NULL.
type Actor struct {
	UserID    uint
	IP        string
	UserAgent string
}

// ActorFrom converts an authenticated principal.
func ActorFrom(p access.Principal) Actor {
	return Actor{UserID: p.UserID, IP: p.IP, UserAgent: p.UserAgent}
}

// Store persists audit rows.
type Store interface {
	Create(ctx context.Context, entry *model.AuditLog) error
}

// Recorder records audit events. Implementations never return errors.
type Recorder interface {
	Record(ctx context.Context, action string, entity Entity, before, after Snapshot, actor Actor)
}

type recorder struct {
	store  Store
	logger *zap.Logger
}

// NewRecorder creates a Recorder backed by store.
func NewRecorder(store Store, logger *zap.Logger) Recorder {
	return &recorder{store: store, logger: logger}
}

func (r *recorder) Record(ctx context.Context, action string, entity Entity, before, after Snapshot, actor Actor) {
	entry := &model.AuditLog{
		Action:    action,
		Table:     entity.Table,
		OldValues: r.encode(before),
		NewValues: r.encode(after),
	}
	if entity.ID != 0 {
		id := entity.ID
		entry.RecordID = &id
	}
	if actor.UserID != 0 {
		uid := actor.UserID
		entry.UserID = &uid
	}
	if actor.IP != "" {
		ip := actor.IP
		entry.IPAddress = &ip
	}
	if actor.UserAgent != "" {
		ua := actor.UserAgent
		entry.UserAgent = &ua
	}

	if err := r.store.Create(ctx, entry); err != nil {
		r.logger.Warn("audit write failed",
			zap.String("action", action),
			zap.String("table", entity.Table),
			zap.Uint("record_id", entity.ID),
			zap.Error(err),
		)
	}
}

func (r *recorder) encode(s Snapshot) datatypes.JSON {
	if s == nil {
		return nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		r.logger.Warn("audit snapshot not serializable", zap.Error(err))
		return nil
	}
	return datatypes.JSON(b)
}

// Nop discards every event.
type Nop struct{}

// Record does nothing.
func (Nop) Record(context.Context, string, Entity, Snapshot, Snapshot, Actor) {}
