package dto

// ── classes ──

// CreateClassRequest POST /classes.
type CreateClassRequest struct {
	Name           string  `json:"name"             binding:"required,max=255"`
	TrainerName    string  `json:"trainer_name"     binding:"required,max=255"`
	ClassTimings   string  `json:"class_timings"    binding:"required,max=255"`
	GoogleMeetLink *string `json:"google_meet_link" binding:"omitempty,url,max=200"`
	Description    *string `json:"description"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateClassRequest PUT/PATCH /classes/:id.
type UpdateClassRequest struct {
	Name           *string `json:"name"             binding:"omitempty,min=1,max=255"`
	TrainerName    *string `json:"trainer_name"     binding:"omitempty,min=1,max=255"`
	ClassTimings   *string `json:"class_timings"    binding:"omitempty,min=1,max=255"`
	GoogleMeetLink *string `json:"google_meet_link" binding:"omitempty,url,max=200"`
	Description    *string `json:"description"`
	IsActive       *bool   `json:"is_active"`
}
