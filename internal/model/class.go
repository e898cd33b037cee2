package model

// Class maps to classes: a standalone scheduled session.
type Class struct {
	ID             uint    `gorm:"primaryKey"                 json:"id"`
	Name           string  `gorm:"type:varchar(255);not null" json:"name"`
	TrainerName    string  `gorm:"type:varchar(255);not null" json:"trainer_name"`
	ClassTimings   string  `gorm:"type:varchar(255);not null" json:"class_timings"`
	GoogleMeetLink *string `gorm:"type:varchar(200)"          json:"google_meet_link"`
	Description    *string `gorm:"type:text"                  json:"description"`
	IsActive       bool    `gorm:"not null"                   json:"is_active"`
	CreatedBy      *uint   `gorm:"index"                      json:"created_by"`
	Timestamps
}

// TableName table name.
func (Class) TableName() string { return "classes" }
