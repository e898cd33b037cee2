package model

import "time"

// Timestamps is embedded by entities that track creation and modification.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// AllModels lists every persisted entity, in dependency order.
// Used by AutoMigrate in tests; production schema comes from SQL migrations.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&PasswordResetToken{},
		&Program{},
		&ProgramTopic{},
		&Batch{},
		&BatchTrainer{},
		&BatchTrainee{},
		&Designation{},
		&DesignationProgram{},
		&TraineeDesignation{},
		&ProgressRecord{},
		&Class{},
		&AuditLog{},
	}
}
