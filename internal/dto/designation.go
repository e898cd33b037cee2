package dto

// ── designations ──

// CreateDesignationRequest POST /designations.
type CreateDesignationRequest struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateDesignationRequest PUT/PATCH /designations/:id.
type UpdateDesignationRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ── designation programs ──

// CreateDesignationProgramRequest POST /designation-programs.
type CreateDesignationProgramRequest struct {
	DesignationID uint  `json:"designation_id" binding:"required"`
	ProgramID     uint  `json:"program_id"     binding:"required"`
	IsRequired    *bool `json:"is_required"`
}

// UpdateDesignationProgramRequest PUT/PATCH /designation-programs/:id.
type UpdateDesignationProgramRequest struct {
	DesignationID *uint `json:"designation_id" binding:"omitempty,min=1"`
	ProgramID     *uint `json:"program_id"     binding:"omitempty,min=1"`
	IsRequired    *bool `json:"is_required"`
}

// ── trainee designations ──

// CreateTraineeDesignationRequest POST /trainee-designations.
type CreateTraineeDesignationRequest struct {
	TraineeID     uint    `json:"trainee_id"     binding:"required"`
	DesignationID uint    `json:"designation_id" binding:"required"`
	AssignedDate  *string `json:"assigned_date"  binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTraineeDesignationRequest PUT/PATCH /trainee-designations/:id.
type UpdateTraineeDesignationRequest struct {
	TraineeID     *uint   `json:"trainee_id"     binding:"omitempty,min=1"`
	DesignationID *uint   `json:"designation_id" binding:"omitempty,min=1"`
	AssignedDate  *string `json:"assigned_date"  binding:"omitempty,datetime=2006-01-02"`
}
