package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// DesignationRepository designation persistence.
type DesignationRepository interface {
	Create(ctx context.Context, d *model.Designation) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.Designation, error)
	Update(ctx context.Context, d *model.Designation) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.Designation, int64, error)
	// Delete removes the designation with its program and trainee links.
	Delete(ctx context.Context, id uint) error
}

type designationRepo struct {
	*crud[model.Designation]
}

// NewDesignationRepo creates a DesignationRepository.
func NewDesignationRepo(db *gorm.DB) DesignationRepository {
	return &designationRepo{crud: newCrud[model.Designation](db, ListSpec{
		Filters:  map[string]FilterKind{"is_active": FilterBool},
		Search:   []string{"name"},
		Ordering: []string{"name"},
		Default:  []string{"id"},
	})}
}

func (r *designationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("designation_id = ?", id).Delete(&model.DesignationProgram{}).Error; err != nil {
			return err
		}
		if err := tx.Where("designation_id = ?", id).Delete(&model.TraineeDesignation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Designation{}).Error
	})
}

// ── designation programs ──

// DesignationProgramRepository designation_programs persistence.
type DesignationProgramRepository interface {
	Create(ctx context.Context, dp *model.DesignationProgram) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.DesignationProgram, error)
	Update(ctx context.Context, dp *model.DesignationProgram) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.DesignationProgram, int64, error)
	Linked(ctx context.Context, designationID, programID, excludeID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type designationProgramRepo struct {
	*crud[model.DesignationProgram]
}

// NewDesignationProgramRepo creates a DesignationProgramRepository.
func NewDesignationProgramRepo(db *gorm.DB) DesignationProgramRepository {
	return &designationProgramRepo{crud: newCrud[model.DesignationProgram](db, ListSpec{
		Filters:  map[string]FilterKind{"designation_id": FilterInt, "program_id": FilterInt},
		Ordering: []string{"id"},
		Default:  []string{"id"},
	})}
}

func (r *designationProgramRepo) Linked(ctx context.Context, designationID, programID, excludeID uint) (bool, error) {
	return pairExists(ctx, r.db, &model.DesignationProgram{}, "designation_id", designationID, "program_id", programID, excludeID)
}

func (r *designationProgramRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DesignationProgram{}).Error
}

// ── trainee designations ──

// TraineeDesignationRepository trainee_designations persistence.
type TraineeDesignationRepository interface {
	Create(ctx context.Context, td *model.TraineeDesignation) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.TraineeDesignation, error)
	Update(ctx context.Context, td *model.TraineeDesignation) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.TraineeDesignation, int64, error)
	Linked(ctx context.Context, traineeID, designationID, excludeID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type traineeDesignationRepo struct {
	*crud[model.TraineeDesignation]
}

// NewTraineeDesignationRepo creates a TraineeDesignationRepository.
func NewTraineeDesignationRepo(db *gorm.DB) TraineeDesignationRepository {
	return &traineeDesignationRepo{crud: newCrud[model.TraineeDesignation](db, ListSpec{
		Filters:  map[string]FilterKind{"trainee_id": FilterInt, "designation_id": FilterInt},
		Ordering: []string{"id"},
		Default:  []string{"id"},
	})}
}

func (r *traineeDesignationRepo) Linked(ctx context.Context, traineeID, designationID, excludeID uint) (bool, error) {
	return pairExists(ctx, r.db, &model.TraineeDesignation{}, "trainee_id", traineeID, "designation_id", designationID, excludeID)
}

func (r *traineeDesignationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TraineeDesignation{}).Error
}
