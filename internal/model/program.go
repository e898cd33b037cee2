package model

import "time"

// Program maps to programs.
type Program struct {
	ID           uint    `gorm:"primaryKey"                 json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Description  *string `gorm:"type:text"                  json:"description"`
	DurationDays int     `gorm:"not null"                   json:"duration_days"`
	IsActive     bool    `gorm:"not null"                   json:"is_active"`
	CreatedBy    *uint   `gorm:"index"                      json:"created_by"`
	Timestamps

	Topics []ProgramTopic `gorm:"foreignKey:ProgramID" json:"topics"`
}

// TableName table name.
func (Program) TableName() string { return "programs" }

// ProgramTopic maps to program_topics.
type ProgramTopic struct {
	ID               uint      `gorm:"primaryKey"                 json:"id"`
	ProgramID        uint      `gorm:"not null;index"             json:"program_id"`
	TopicName        string    `gorm:"type:varchar(255);not null" json:"topic_name"`
	TopicDescription *string   `gorm:"type:text"                  json:"topic_description"`
	TopicOrder       int       `gorm:"not null"                   json:"topic_order"`
	EstimatedHours   int       `gorm:"not null"                   json:"estimated_hours"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`
}

// TableName table name.
func (ProgramTopic) TableName() string { return "program_topics" }
