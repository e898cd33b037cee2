package model

import "time"

// PasswordResetToken maps to password_reset_tokens.
type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey"                              json:"id"`
	UserID    uint      `gorm:"not null;index"                          json:"user_id"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null"  json:"-"`
	ExpiresAt time.Time `gorm:"not null;index"                          json:"expires_at"`
	IsUsed    bool      `gorm:"not null"                                json:"is_used"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"                 json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name.
func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

// Usable reports whether the token may still complete a reset at now.
func (t *PasswordResetToken) Usable(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}

// Expired reports whether now is at or past the expiry.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
