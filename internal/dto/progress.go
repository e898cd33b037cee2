package dto

// ── progress records ──

// CreateProgressRequest POST /progress-records. For trainee callers
// trainee_id and updated_by are overwritten with the caller.
type CreateProgressRequest struct {
	TraineeID            uint    `json:"trainee_id"            binding:"omitempty"`
	BatchID              uint    `json:"batch_id"              binding:"required"`
	TopicID              *uint   `json:"topic_id"              binding:"omitempty,min=1"`
	Status               string  `json:"status"                binding:"omitempty,oneof=not_started in_progress completed"`
	CompletionPercentage int     `json:"completion_percentage" binding:"min=0,max=100"`
	Notes                *string `json:"notes"`
	UpdatedBy            *uint   `json:"updated_by"            binding:"omitempty,min=1"`
}

// UpdateProgressRequest PUT/PATCH /progress-records/:id.
type UpdateProgressRequest struct {
	BatchID              *uint   `json:"batch_id"              binding:"omitempty,min=1"`
	TopicID              *uint   `json:"topic_id"              binding:"omitempty,min=1"`
	Status               *string `json:"status"                binding:"omitempty,oneof=not_started in_progress completed"`
	CompletionPercentage *int    `json:"completion_percentage" binding:"omitempty,min=0,max=100"`
	Notes                *string `json:"notes"`
}
