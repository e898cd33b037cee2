package dto

// Dates travel as "2006-01-02".

// ── batches ──

// CreateBatchRequest POST /batches.
type CreateBatchRequest struct {
	Name        string  `json:"name"         binding:"required,max=255"`
	ProgramID   uint    `json:"program_id"   binding:"required"`
	StartDate   *string `json:"start_date"   binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"     binding:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status"       binding:"omitempty,oneof=scheduled running completed cancelled"`
	MaxCapacity int     `json:"max_capacity" binding:"min=0"`
}

// UpdateBatchRequest PUT/PATCH /batches/:id.
type UpdateBatchRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=1,max=255"`
	ProgramID   *uint   `json:"program_id"   binding:"omitempty,min=1"`
	StartDate   *string `json:"start_date"   binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"     binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"       binding:"omitempty,oneof=scheduled running completed cancelled"`
	MaxCapacity *int    `json:"max_capacity" binding:"omitempty,min=0"`
}

// ── batch trainers ──

// CreateBatchTrainerRequest POST /batch-trainers.
type CreateBatchTrainerRequest struct {
	BatchID   uint `json:"batch_id"   binding:"required"`
	TrainerID uint `json:"trainer_id" binding:"required"`
	IsLead    bool `json:"is_lead"`
}

// UpdateBatchTrainerRequest PUT/PATCH /batch-trainers/:id.
type UpdateBatchTrainerRequest struct {
	BatchID   *uint `json:"batch_id"   binding:"omitempty,min=1"`
	TrainerID *uint `json:"trainer_id" binding:"omitempty,min=1"`
	IsLead    *bool `json:"is_lead"`
}

// ── batch trainees ──

// CreateBatchTraineeRequest POST /batch-trainees. Trainee callers always
// enroll themselves.
type CreateBatchTraineeRequest struct {
	BatchID        uint    `json:"batch_id"        binding:"required"`
	TraineeID      uint    `json:"trainee_id"      binding:"omitempty"`
	EnrollmentDate *string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
	CompletionDate *string `json:"completion_date" binding:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status"          binding:"omitempty,oneof=enrolled in_progress completed dropped"`
	Rating         *int    `json:"rating"          binding:"omitempty,min=1,max=5"`
	Feedback       *string `json:"feedback"`
}

// UpdateBatchTraineeRequest PUT/PATCH /batch-trainees/:id.
type UpdateBatchTraineeRequest struct {
	BatchID        *uint   `json:"batch_id"        binding:"omitempty,min=1"`
	TraineeID      *uint   `json:"trainee_id"      binding:"omitempty,min=1"`
	EnrollmentDate *string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
	CompletionDate *string `json:"completion_date" binding:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status"          binding:"omitempty,oneof=enrolled in_progress completed dropped"`
	Rating         *int    `json:"rating"          binding:"omitempty,min=1,max=5"`
	Feedback       *string `json:"feedback"`
}
