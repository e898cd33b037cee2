package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// ProgressRepository progress_records persistence.
type ProgressRepository interface {
	Create(ctx context.Context, pr *model.ProgressRecord) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.ProgressRecord, error)
	Update(ctx context.Context, pr *model.ProgressRecord) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.ProgressRecord, int64, error)
	// ListForReport returns every matching record with trainee, batch and
	// topic loaded, unpaginated.
	ListForReport(ctx context.Context, p ListParams, scopes ...Scope) ([]model.ProgressRecord, error)
	Delete(ctx context.Context, id uint) error
}

type progressRepo struct {
	*crud[model.ProgressRecord]
}

// NewProgressRepo creates a ProgressRepository.
func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{crud: newCrud[model.ProgressRecord](db, ListSpec{
		Filters:  map[string]FilterKind{"trainee_id": FilterInt, "batch_id": FilterInt, "status": FilterString},
		Ordering: []string{"last_updated"},
		Default:  []string{"id"},
	})}
}

func (r *progressRepo) ListForReport(ctx context.Context, p ListParams, scopes ...Scope) ([]model.ProgressRecord, error) {
	db := r.db.WithContext(ctx).Model(&model.ProgressRecord{}).Scopes(toGorm(scopes)...)
	db, err := r.spec.applyFilters(db, p)
	if err != nil {
		return nil, err
	}

	var records []model.ProgressRecord
	err = db.Preload("Trainee").
		Preload("Batch").
		Preload("Topic").
		Clauses(r.spec.orderBy(p.Ordering)).
		Find(&records).Error
	return records, err
}

func (r *progressRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProgressRecord{}).Error
}
