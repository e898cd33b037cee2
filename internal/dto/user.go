package dto

// ── users ──

// CreateUserRequest admin-side user creation. Without a password the
// account cannot log in until a reset is completed.
type CreateUserRequest struct {
	Username     string  `json:"username"       binding:"required,max=150"`
	Email        string  `json:"email"          binding:"required,email,max=254"`
	Password     string  `json:"password"       binding:"omitempty"`
	FirstName    string  `json:"first_name"     binding:"omitempty,max=150"`
	LastName     string  `json:"last_name"      binding:"omitempty,max=150"`
	Role         string  `json:"role"           binding:"omitempty,oneof=admin trainer trainee"`
	Phone        *string `json:"phone"          binding:"omitempty,max=50"`
	Expertise    *string `json:"expertise"`
	Designation  *string `json:"designation"    binding:"omitempty,max=255"`
	IsActiveFlag *bool   `json:"is_active_flag"`
}

// UpdateUserRequest PUT/PATCH /users/:id.
type UpdateUserRequest struct {
	Username     *string `json:"username"       binding:"omitempty,min=1,max=150"`
	Email        *string `json:"email"          binding:"omitempty,email,max=254"`
	Password     *string `json:"password"`
	FirstName    *string `json:"first_name"     binding:"omitempty,max=150"`
	LastName     *string `json:"last_name"      binding:"omitempty,max=150"`
	Role         *string `json:"role"           binding:"omitempty,oneof=admin trainer trainee"`
	Phone        *string `json:"phone"          binding:"omitempty,max=50"`
	Expertise    *string `json:"expertise"`
	Designation  *string `json:"designation"    binding:"omitempty,max=255"`
	IsActiveFlag *bool   `json:"is_active_flag"`
}

// UserResponse public user profile. The password hash is never exposed.
type UserResponse struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	Expertise    *string `json:"expertise"`
	Designation  *string `json:"designation"`
	IsActiveFlag bool    `json:"is_active_flag"`
	IsStaff      bool    `json:"is_staff"`
}
