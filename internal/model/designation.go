package model

import (
	"time"

	"gorm.io/datatypes"
)

// Designation maps to designations.
type Designation struct {
	ID          uint    `gorm:"primaryKey"                 json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text"                  json:"description"`
	IsActive    bool    `gorm:"not null"                   json:"is_active"`
	Timestamps
}

// TableName table name.
func (Designation) TableName() string { return "designations" }

// DesignationProgram maps to designation_programs.
type DesignationProgram struct {
	ID            uint      `gorm:"primaryKey"                                    json:"id"`
	DesignationID uint      `gorm:"not null;uniqueIndex:uq_designation_program"   json:"designation_id"`
	ProgramID     uint      `gorm:"not null;uniqueIndex:uq_designation_program"   json:"program_id"`
	IsRequired    bool      `gorm:"not null"                                      json:"is_required"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime"                       json:"created_at"`
}

// TableName table name.
func (DesignationProgram) TableName() string { return "designation_programs" }

// TraineeDesignation maps to trainee_designations.
type TraineeDesignation struct {
	ID            uint           `gorm:"primaryKey"                                  json:"id"`
	TraineeID     uint           `gorm:"not null;uniqueIndex:uq_trainee_designation" json:"trainee_id"`
	DesignationID uint           `gorm:"not null;uniqueIndex:uq_trainee_designation" json:"designation_id"`
	AssignedDate  datatypes.Date `gorm:"not null"                                    json:"assigned_date"`
	CreatedBy     *uint          `gorm:"index"                                       json:"created_by"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime"                     json:"created_at"`
}

// TableName table name.
func (TraineeDesignation) TableName() string { return "trainee_designations" }
