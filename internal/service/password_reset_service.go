package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/mailer"
)

const resetTokenBytes = 32

// PasswordResetService two-step password reset.
type PasswordResetService interface {
	// Request issues a token and mails the reset link. Delivery failures are
	// audited, never returned.
	Request(ctx context.Context, req *dto.PasswordResetRequest, client audit.Actor) error
	// Confirm redeems a token and sets the new password.
	Confirm(ctx context.Context, req *dto.PasswordResetConfirmRequest, client audit.Actor) error
}

type passwordResetService struct {
	base
	cfg    *config.Config
	mailer mailer.Sender
	now    func() time.Time
}

// NewPasswordResetService creates a PasswordResetService.
func NewPasswordResetService(
	cfg *config.Config,
	repo *repository.Repository,
	sender mailer.Sender,
	recorder audit.Recorder,
	logger *zap.Logger,
) PasswordResetService {
	return &passwordResetService{
		base:   base{repo: repo, audit: recorder, logger: logger},
		cfg:    cfg,
		mailer: sender,
		now:    time.Now,
	}
}

// ────────────────────── Request ──────────────────────

func (s *passwordResetService) Request(ctx context.Context, req *dto.PasswordResetRequest, client audit.Actor) error {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewFieldError("email", "No user found with this email address.")
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return err
	}

	token, err := newResetToken()
	if err != nil {
		s.logger.Error("generate reset token failed", zap.Error(err))
		return err
	}

	record := &model.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(s.cfg.PasswordReset.TokenTTL),
	}
	if err := s.repo.PasswordReset.Create(ctx, record); err != nil {
		s.logger.Error("store reset token failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return err
	}

	client.UserID = user.ID
	entity := audit.Entity{Table: "PasswordResetToken", ID: record.ID}

	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.Frontend.URL, "/"), token)
	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Password Reset Request",
		Body:    "Click the following link to reset your password: " + link,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("reset email delivery failed", zap.Uint("user_id", user.ID), zap.Error(err))
		s.audit.Record(ctx, audit.ActionPasswordResetEmailFailed, entity,
			nil, audit.Snapshot{"error": err.Error()}, client)
	}

	s.audit.Record(ctx, audit.ActionPasswordResetRequested, entity,
		nil, audit.Snapshot{"email": user.Email}, client)
	return nil
}

// ────────────────────── Confirm ──────────────────────

func (s *passwordResetService) Confirm(ctx context.Context, req *dto.PasswordResetConfirmRequest, client audit.Actor) error {
	if req.NewPassword != req.NewPassword2 {
		return apperrors.NewFieldError("new_password", "Password fields didn't match.")
	}

	token, err := s.repo.PasswordReset.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewFieldError("token", "Invalid token.")
		}
		s.logger.Error("reset token lookup failed", zap.Error(err))
		return err
	}
	if token.IsUsed {
		return apperrors.NewFieldError("token", "Invalid token.")
	}
	if token.Expired(s.now()) {
		return apperrors.NewFieldError("token", "Token has expired.")
	}

	user, err := s.repo.User.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewFieldError("token", "Invalid token.")
		}
		s.logger.Error("user lookup failed", zap.Uint("user_id", token.UserID), zap.Error(err))
		return err
	}

	if err := validatePassword("new_password", req.NewPassword, user.Username); err != nil {
		return err
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return err
	}

	redeemed, err := s.repo.PasswordReset.Redeem(ctx, token.ID, user.ID, hash)
	if err != nil {
		s.logger.Error("redeem reset token failed", zap.Uint("token_id", token.ID), zap.Error(err))
		return err
	}
	if !redeemed {
		return apperrors.NewFieldError("token", "Invalid token.")
	}

	client.UserID = user.ID
	s.audit.Record(ctx, audit.ActionPasswordResetCompleted, audit.Entity{Table: "User", ID: user.ID}, nil, nil, client)
	return nil
}

// newResetToken returns 32 random bytes, URL-safe base64 without padding.
func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
