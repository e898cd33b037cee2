package model

import (
	"time"

	"gorm.io/datatypes"
)

// BatchStatus lifecycle of a batch.
type BatchStatus string

const (
	BatchScheduled BatchStatus = "scheduled"
	BatchRunning   BatchStatus = "running"
	BatchCompleted BatchStatus = "completed"
	BatchCancelled BatchStatus = "cancelled"
)

// Batch maps to batches.
type Batch struct {
	ID          uint            `gorm:"primaryKey"                 json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	ProgramID   uint            `gorm:"not null;index"             json:"program_id"`
	StartDate   *datatypes.Date `json:"start_date"`
	EndDate     *datatypes.Date `json:"end_date"`
	Status      BatchStatus     `gorm:"type:varchar(20);not null"  json:"status"`
	MaxCapacity int             `gorm:"not null"                   json:"max_capacity"`
	CreatedBy   *uint           `gorm:"index"                      json:"created_by"`
	Timestamps

	Program *Program `gorm:"foreignKey:ProgramID" json:"-"`
}

// TableName table name.
func (Batch) TableName() string { return "batches" }

// BatchTrainer maps to batch_trainers.
type BatchTrainer struct {
	ID           uint      `gorm:"primaryKey"                                   json:"id"`
	BatchID      uint      `gorm:"not null;uniqueIndex:uq_batch_trainer"        json:"batch_id"`
	TrainerID    uint      `gorm:"not null;uniqueIndex:uq_batch_trainer"        json:"trainer_id"`
	IsLead       bool      `gorm:"not null"                                     json:"is_lead"`
	AssignedDate time.Time `gorm:"not null;autoCreateTime"                      json:"assigned_date"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"                      json:"created_at"`

	Trainer *User `gorm:"foreignKey:TrainerID" json:"-"`
}

// TableName table name.
func (BatchTrainer) TableName() string { return "batch_trainers" }

// EnrollmentStatus lifecycle of a trainee inside a batch.
type EnrollmentStatus string

const (
	EnrollmentEnrolled   EnrollmentStatus = "enrolled"
	EnrollmentInProgress EnrollmentStatus = "in_progress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
	EnrollmentDropped    EnrollmentStatus = "dropped"
)

// BatchTrainee maps to batch_trainees.
type BatchTrainee struct {
	ID             uint             `gorm:"primaryKey"                            json:"id"`
	BatchID        uint             `gorm:"not null;uniqueIndex:uq_batch_trainee" json:"batch_id"`
	TraineeID      uint             `gorm:"not null;uniqueIndex:uq_batch_trainee" json:"trainee_id"`
	EnrollmentDate *datatypes.Date  `json:"enrollment_date"`
	CompletionDate *datatypes.Date  `json:"completion_date"`
	Status         EnrollmentStatus `gorm:"type:varchar(20);not null"             json:"status"`
	Rating         *int             `json:"rating"`
	Feedback       *string          `gorm:"type:text"                             json:"feedback"`
	Timestamps
}

// TableName table name.
func (BatchTrainee) TableName() string { return "batch_trainees" }
