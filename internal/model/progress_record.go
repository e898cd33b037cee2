package model

import "time"

// ProgressStatus state of a trainee on a batch/topic.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// ProgressRecord maps to progress_records.
type ProgressRecord struct {
	ID                   uint           `gorm:"primaryKey"                json:"id"`
	TraineeID            uint           `gorm:"not null;index"            json:"trainee_id"`
	BatchID              uint           `gorm:"not null;index"            json:"batch_id"`
	TopicID              *uint          `gorm:"index"                     json:"topic_id"`
	Status               ProgressStatus `gorm:"type:varchar(20);not null" json:"status"`
	CompletionPercentage int            `gorm:"not null"                  json:"completion_percentage"`
	Notes                *string        `gorm:"type:text"                 json:"notes"`
	LastUpdated          time.Time      `gorm:"not null;autoUpdateTime"   json:"last_updated"`
	UpdatedBy            *uint          `gorm:"index"                     json:"updated_by"`
	CreatedAt            time.Time      `gorm:"not null;autoCreateTime"   json:"created_at"`

	Trainee *User         `gorm:"foreignKey:TraineeID" json:"-"`
	Batch   *Batch        `gorm:"foreignKey:BatchID"   json:"-"`
	Topic   *ProgramTopic `gorm:"foreignKey:TopicID"   json:"-"`
}

// TableName table name.
func (ProgressRecord) TableName() string { return "progress_records" }
