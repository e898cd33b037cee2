package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// AuditLogRepository append-only audit_logs access. There is no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.AuditLog, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.AuditLog, int64, error)
}

type auditLogRepo struct {
	*crud[model.AuditLog]
}

// NewAuditLogRepo creates an AuditLogRepository.
func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{crud: newCrud[model.AuditLog](db, ListSpec{
		Filters:  map[string]FilterKind{"action": FilterString, "table_name": FilterString, "user_id": FilterInt},
		Search:   []string{"action", "table_name"},
		Ordering: []string{"created_at"},
		Default:  []string{"-created_at"},
	})}
}
