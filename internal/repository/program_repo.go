package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// ProgramRepository program persistence.
type ProgramRepository interface {
	Create(ctx context.Context, p *model.Program) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.Program, error)
	GetWithTopics(ctx context.Context, id uint) (*model.Program, error)
	Update(ctx context.Context, p *model.Program) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.Program, int64, error)
	ListWithTopics(ctx context.Context, p ListParams) ([]model.Program, int64, error)
	// Delete removes the program together with its topics, designation
	// links, batches and everything hanging off those batches.
	Delete(ctx context.Context, id uint) error
}

var programListSpec = ListSpec{
	Filters:  map[string]FilterKind{"is_active": FilterBool},
	Search:   []string{"name", "description"},
	Ordering: []string{"name", "created_at"},
	Default:  []string{"id"},
}

type programRepo struct {
	*crud[model.Program]
}

// NewProgramRepo creates a ProgramRepository.
func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{crud: newCrud[model.Program](db, programListSpec)}
}

func orderedTopics(db *gorm.DB) *gorm.DB {
	return db.Order("topic_order ASC, id ASC")
}

func (r *programRepo) GetWithTopics(ctx context.Context, id uint) (*model.Program, error) {
	var p model.Program
	err := r.db.WithContext(ctx).
		Preload("Topics", orderedTopics).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepo) ListWithTopics(ctx context.Context, p ListParams) ([]model.Program, int64, error) {
	programs, total, err := r.List(ctx, p)
	if err != nil || len(programs) == 0 {
		return programs, total, err
	}

	ids := make([]uint, len(programs))
	for i := range programs {
		ids[i] = programs[i].ID
	}
	var topics []model.ProgramTopic
	if err := r.db.WithContext(ctx).
		Scopes(orderedTopics).
		Where("program_id IN ?", ids).
		Find(&topics).Error; err != nil {
		return nil, 0, err
	}

	byProgram := make(map[uint][]model.ProgramTopic, len(programs))
	for _, t := range topics {
		byProgram[t.ProgramID] = append(byProgram[t.ProgramID], t)
	}
	for i := range programs {
		programs[i].Topics = byProgram[programs[i].ID]
		if programs[i].Topics == nil {
			programs[i].Topics = []model.ProgramTopic{}
		}
	}
	return programs, total, nil
}

func (r *programRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batchIDs []uint
		if err := tx.Model(&model.Batch{}).Where("program_id = ?", id).Pluck("id", &batchIDs).Error; err != nil {
			return err
		}
		if err := deleteBatchChildren(tx, batchIDs); err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", id).Delete(&model.Batch{}).Error; err != nil {
			return err
		}

		var topicIDs []uint
		if err := tx.Model(&model.ProgramTopic{}).Where("program_id = ?", id).Pluck("id", &topicIDs).Error; err != nil {
			return err
		}
		if err := detachTopics(tx, topicIDs); err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", id).Delete(&model.ProgramTopic{}).Error; err != nil {
			return err
		}

		if err := tx.Where("program_id = ?", id).Delete(&model.DesignationProgram{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Program{}).Error
	})
}
