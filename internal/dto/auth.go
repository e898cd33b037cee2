package dto

// ── auth ──

// RegisterRequest self-registration.
type RegisterRequest struct {
	Username  string `json:"username"   binding:"required,max=150"`
	Email     string `json:"email"      binding:"required,email,max=254"`
	Password  string `json:"password"   binding:"required"`
	Password2 string `json:"password2"  binding:"required"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name"  binding:"required,max=150"`
	Phone     string `json:"phone"      binding:"omitempty,max=50"`
	Role      string `json:"role"       binding:"omitempty,oneof=admin trainer trainee"`
}

// RegisterResponse 201 body of /register.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginRequest username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LogoutRequest optionally revokes the refresh token too.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// TokenResponse access/refresh pair.
type TokenResponse struct {
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	ExpiresIn int       `json:"expires_in"` // access token lifetime, seconds
	User      TokenUser `json:"user"`
}

// TokenUser profile embedded in the login response.
type TokenUser struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         string  `json:"role"`
	Phone        *string `json:"phone"`
	IsActiveFlag bool    `json:"is_active_flag"`
}

// ── password reset ──

// PasswordResetRequest step one: ask for a reset link.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetConfirmRequest step two: redeem the token.
type PasswordResetConfirmRequest struct {
	Token        string `json:"token"         binding:"required"`
	NewPassword  string `json:"new_password"  binding:"required"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}
