package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// TopicRepository program topic persistence.
type TopicRepository interface {
	Create(ctx context.Context, t *model.ProgramTopic) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.ProgramTopic, error)
	Update(ctx context.Context, t *model.ProgramTopic) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.ProgramTopic, int64, error)
	// Delete removes the topic; progress records keep their row with topic_id NULL.
	Delete(ctx context.Context, id uint) error
}

var topicListSpec = ListSpec{
	Filters:  map[string]FilterKind{"program_id": FilterInt},
	Ordering: []string{"topic_order", "id"},
	Default:  []string{"topic_order", "id"},
}

type topicRepo struct {
	*crud[model.ProgramTopic]
}

// NewTopicRepo creates a TopicRepository.
func NewTopicRepo(db *gorm.DB) TopicRepository {
	return &topicRepo{crud: newCrud[model.ProgramTopic](db, topicListSpec)}
}

func (r *topicRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detachTopics(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.ProgramTopic{}).Error
	})
}

// detachTopics clears progress_records.topic_id for the given topics.
func detachTopics(tx *gorm.DB, topicIDs []uint) error {
	if len(topicIDs) == 0 {
		return nil
	}
	return tx.Model(&model.ProgressRecord{}).
		Where("topic_id IN ?", topicIDs).
		UpdateColumn("topic_id", nil).Error
}
