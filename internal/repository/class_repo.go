package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// ClassRepository classes persistence.
type ClassRepository interface {
	Create(ctx context.Context, c *model.Class) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.Class, error)
	Update(ctx context.Context, c *model.Class) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.Class, int64, error)
	Delete(ctx context.Context, id uint) error
}

type classRepo struct {
	*crud[model.Class]
}

// NewClassRepo creates a ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{crud: newCrud[model.Class](db, ListSpec{
		Filters:  map[string]FilterKind{"is_active": FilterBool},
		Search:   []string{"name", "trainer_name", "description"},
		Ordering: []string{"name", "created_at"},
		Default:  []string{"id"},
	})}
}

func (r *classRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Class{}).Error
}
