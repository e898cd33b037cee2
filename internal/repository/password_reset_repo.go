package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// PasswordResetRepository reset token persistence.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	// Redeem marks the token used and stores the new hash in one
	// transaction. It returns false when another request consumed the
	// token first.
	Redeem(ctx context.Context, tokenID, userID uint, passwordHash string) (bool, error)
}

type passwordResetRepo struct {
	db *gorm.DB
}

// NewPasswordResetRepo creates a PasswordResetRepository.
func NewPasswordResetRepo(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *passwordResetRepo) GetByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepo) Redeem(ctx context.Context, tokenID, userID uint, passwordHash string) (bool, error) {
	redeemed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PasswordResetToken{}).
			Where("id = ? AND is_used = ?", tokenID, false).
			Update("is_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("password_hash", passwordHash).Error; err != nil {
			return err
		}
		redeemed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return redeemed, nil
}
