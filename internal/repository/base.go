package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crud is the shared create/read/update/list implementation embedded by
// every entity repository.
type crud[T any] struct {
	db   *gorm.DB
	spec ListSpec
}

func newCrud[T any](db *gorm.DB, spec ListSpec) *crud[T] {
	return &crud[T]{db: db, spec: spec}
}

func (r *crud[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

func (r *crud[T]) GetByID(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	var v T
	err := r.db.WithContext(ctx).
		Scopes(toGorm(scopes)...).
		Where("id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *crud[T]) Update(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

// Exists reports whether a row with id exists.
func (r *crud[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// List returns one page plus the total row count before pagination.
func (r *crud[T]) List(ctx context.Context, p ListParams, scopes ...Scope) ([]T, int64, error) {
	db := r.db.WithContext(ctx).Model(new(T)).Scopes(toGorm(scopes)...)

	db, err := r.spec.applyFilters(db, p)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	q := db.Clauses(r.spec.orderBy(p.Ordering))
	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func toGorm(scopes []Scope) []func(*gorm.DB) *gorm.DB {
	out := make([]func(*gorm.DB) *gorm.DB, len(scopes))
	for i, s := range scopes {
		out[i] = s
	}
	return out
}

// OwnedBy restricts rows to those whose column references userID.
func OwnedBy(column string, userID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: userID})
	}
}
