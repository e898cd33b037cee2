package dto

// ── programs ──

// CreateProgramRequest POST /programs.
type CreateProgramRequest struct {
	Name         string  `json:"name"          binding:"required,max=255"`
	Description  *string `json:"description"`
	DurationDays int     `json:"duration_days" binding:"required,min=1"`
	IsActive     *bool   `json:"is_active"`
}

// UpdateProgramRequest PUT/PATCH /programs/:id.
type UpdateProgramRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description"`
	DurationDays *int    `json:"duration_days" binding:"omitempty,min=1"`
	IsActive     *bool   `json:"is_active"`
}

// ── program topics ──

// CreateTopicRequest POST /program-topics.
type CreateTopicRequest struct {
	ProgramID        uint    `json:"program_id"        binding:"required"`
	TopicName        string  `json:"topic_name"        binding:"required,max=255"`
	TopicDescription *string `json:"topic_description"`
	TopicOrder       int     `json:"topic_order"       binding:"min=0"`
	EstimatedHours   int     `json:"estimated_hours"   binding:"min=0"`
}

// UpdateTopicRequest PUT/PATCH /program-topics/:id.
type UpdateTopicRequest struct {
	ProgramID        *uint   `json:"program_id"        binding:"omitempty,min=1"`
	TopicName        *string `json:"topic_name"        binding:"omitempty,min=1,max=255"`
	TopicDescription *string `json:"topic_description"`
	TopicOrder       *int    `json:"topic_order"       binding:"omitempty,min=0"`
	EstimatedHours   *int    `json:"estimated_hours"   binding:"omitempty,min=0"`
}
