package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

// AuditLogService read-only access to the audit trail.
type AuditLogService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.AuditLog], error)
	Get(ctx context.Context, id uint) (*model.AuditLog, error)
}

type auditLogService struct {
	base
}

// NewAuditLogService creates an AuditLogService.
func NewAuditLogService(repo *repository.Repository, logger *zap.Logger) AuditLogService {
	return &auditLogService{base: base{repo: repo, logger: logger}}
}

func (s *auditLogService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.AuditLog], error) {
	rows, total, err := s.repo.AuditLog.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list audit logs failed")
	}
	return newPage(rows, total, q), nil
}

func (s *auditLogService) Get(ctx context.Context, id uint) (*model.AuditLog, error) {
	entry, err := s.repo.AuditLog.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrAuditLogNotFound, "get audit log failed", zap.Uint("id", id))
	}
	return entry, nil
}
