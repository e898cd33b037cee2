package repository

import "gorm.io/gorm"

// Repository aggregates every repository.
type Repository struct {
	User               UserRepository
	PasswordReset      PasswordResetRepository
	Program            ProgramRepository
	Topic              TopicRepository
	Batch              BatchRepository
	BatchTrainer       BatchTrainerRepository
	BatchTrainee       BatchTraineeRepository
	Designation        DesignationRepository
	DesignationProgram DesignationProgramRepository
	TraineeDesignation TraineeDesignationRepository
	Progress           ProgressRepository
	Class              ClassRepository
	AuditLog           AuditLogRepository
}

// NewRepository builds the aggregate on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:               NewUserRepo(db),
		PasswordReset:      NewPasswordResetRepo(db),
		Program:            NewProgramRepo(db),
		Topic:              NewTopicRepo(db),
		Batch:              NewBatchRepo(db),
		BatchTrainer:       NewBatchTrainerRepo(db),
		BatchTrainee:       NewBatchTraineeRepo(db),
		Designation:        NewDesignationRepo(db),
		DesignationProgram: NewDesignationProgramRepo(db),
		TraineeDesignation: NewTraineeDesignationRepo(db),
		Progress:           NewProgressRepo(db),
		Class:              NewClassRepo(db),
		AuditLog:           NewAuditLogRepo(db),
	}
}
