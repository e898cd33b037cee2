package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// BatchRepository batch persistence.
type BatchRepository interface {
	Create(ctx context.Context, b *model.Batch) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.Batch, error)
	// GetForCalendar loads the batch with its program and trainers.
	GetForCalendar(ctx context.Context, id uint) (*model.Batch, []model.BatchTrainer, error)
	Update(ctx context.Context, b *model.Batch) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.Batch, int64, error)
	// Delete removes the batch with its trainer links, enrollments and progress.
	Delete(ctx context.Context, id uint) error
}

var batchListSpec = ListSpec{
	Filters:  map[string]FilterKind{"program_id": FilterInt, "status": FilterString},
	Search:   []string{"name"},
	Ordering: []string{"start_date", "end_date"},
	Default:  []string{"id"},
}

type batchRepo struct {
	*crud[model.Batch]
}

// NewBatchRepo creates a BatchRepository.
func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{crud: newCrud[model.Batch](db, batchListSpec)}
}

func (r *batchRepo) GetForCalendar(ctx context.Context, id uint) (*model.Batch, []model.BatchTrainer, error) {
	var b model.Batch
	err := r.db.WithContext(ctx).
		Preload("Program").
		Where("id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, nil, err
	}

	var trainers []model.BatchTrainer
	err = r.db.WithContext(ctx).
		Preload("Trainer").
		Where("batch_id = ?", id).
		Order("is_lead DESC, id ASC").
		Find(&trainers).Error
	if err != nil {
		return nil, nil, err
	}
	return &b, trainers, nil
}

func (r *batchRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteBatchChildren(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Batch{}).Error
	})
}

// deleteBatchChildren removes rows that reference the given batches.
func deleteBatchChildren(tx *gorm.DB, batchIDs []uint) error {
	if len(batchIDs) == 0 {
		return nil
	}
	if err := tx.Where("batch_id IN ?", batchIDs).Delete(&model.ProgressRecord{}).Error; err != nil {
		return err
	}
	if err := tx.Where("batch_id IN ?", batchIDs).Delete(&model.BatchTrainee{}).Error; err != nil {
		return err
	}
	return tx.Where("batch_id IN ?", batchIDs).Delete(&model.BatchTrainer{}).Error
}

// ── batch trainers ──

// BatchTrainerRepository batch_trainers persistence.
type BatchTrainerRepository interface {
	Create(ctx context.Context, bt *model.BatchTrainer) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.BatchTrainer, error)
	Update(ctx context.Context, bt *model.BatchTrainer) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.BatchTrainer, int64, error)
	Linked(ctx context.Context, batchID, trainerID, excludeID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type batchTrainerRepo struct {
	*crud[model.BatchTrainer]
}

// NewBatchTrainerRepo creates a BatchTrainerRepository.
func NewBatchTrainerRepo(db *gorm.DB) BatchTrainerRepository {
	return &batchTrainerRepo{crud: newCrud[model.BatchTrainer](db, ListSpec{
		Filters:  map[string]FilterKind{"batch_id": FilterInt, "trainer_id": FilterInt},
		Ordering: []string{"id"},
		Default:  []string{"id"},
	})}
}

func (r *batchTrainerRepo) Linked(ctx context.Context, batchID, trainerID, excludeID uint) (bool, error) {
	return pairExists(ctx, r.db, &model.BatchTrainer{}, "batch_id", batchID, "trainer_id", trainerID, excludeID)
}

func (r *batchTrainerRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BatchTrainer{}).Error
}

// ── batch trainees ──

// BatchTraineeRepository batch_trainees persistence.
type BatchTraineeRepository interface {
	Create(ctx context.Context, bt *model.BatchTrainee) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.BatchTrainee, error)
	Update(ctx context.Context, bt *model.BatchTrainee) error
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.BatchTrainee, int64, error)
	Linked(ctx context.Context, batchID, traineeID, excludeID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type batchTraineeRepo struct {
	*crud[model.BatchTrainee]
}

// NewBatchTraineeRepo creates a BatchTraineeRepository.
func NewBatchTraineeRepo(db *gorm.DB) BatchTraineeRepository {
	return &batchTraineeRepo{crud: newCrud[model.BatchTrainee](db, ListSpec{
		Filters:  map[string]FilterKind{"batch_id": FilterInt, "trainee_id": FilterInt, "status": FilterString},
		Ordering: []string{"id"},
		Default:  []string{"id"},
	})}
}

func (r *batchTraineeRepo) Linked(ctx context.Context, batchID, traineeID, excludeID uint) (bool, error) {
	return pairExists(ctx, r.db, &model.BatchTrainee{}, "batch_id", batchID, "trainee_id", traineeID, excludeID)
}

func (r *batchTraineeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BatchTrainee{}).Error
}

// pairExists checks a two-column uniqueness constraint ahead of insert.
func pairExists(ctx context.Context, db *gorm.DB, m interface{}, colA string, a uint, colB string, b uint, excludeID uint) (bool, error) {
	var n int64
	q := db.WithContext(ctx).Model(m).Where(colA+" = ? AND "+colB+" = ?", a, b)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}
