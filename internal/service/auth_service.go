package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
)

// TokenBlacklist revokes token IDs. *redis.Client satisfies it, including
// the nil client.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService registration, login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, client audit.Actor) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	// Logout revokes the presented access token and, when given, the refresh token.
	Logout(ctx context.Context, accessClaims *jwt.Claims, refresh string) error
	CurrentUser(ctx context.Context, caller access.Principal) (*dto.UserResponse, error)
}

type authService struct {
	base
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
}

// NewAuthService creates an AuthService.
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	recorder audit.Recorder,
	logger *zap.Logger,
) AuthService {
	return &authService{
		base:      base{repo: repo, audit: recorder, logger: logger},
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, client audit.Actor) (*dto.RegisterResponse, error) {
	if req.Password != req.Password2 {
		return nil, apperrors.NewFieldError("password", "Password fields didn't match.")
	}
	if err := validatePassword("password", req.Password, req.Username); err != nil {
		return nil, err
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewFieldError("role", err.Error())
	}

	taken, err := s.repo.User.UsernameTaken(ctx, req.Username, 0)
	if err != nil {
		s.logger.Error("username lookup failed", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, apperrors.NewFieldError("username", usernameTakenMsg)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActiveFlag: true,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, s.fail(usernameConflict(err), nil, "create user failed", zap.String("username", req.Username))
	}

	client.UserID = user.ID
	s.audit.Record(ctx, audit.ActionUserRegistered, audit.Entity{Table: "User", ID: user.ID},
		nil, audit.Snapshot{"username": user.Username, "role": string(user.Role)}, client)

	return &dto.RegisterResponse{
		Message: "User created successfully",
		User:    toUserResponse(user),
	}, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	if !checkPassword(user.PasswordHash, req.Password) || !user.IsActiveFlag {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.Refresh)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Warn("blacklist lookup failed", zap.Error(err))
	}
	if revoked {
		return nil, ErrTokenInvalid
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		s.logger.Error("user lookup failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
		return nil, err
	}
	if !user.IsActiveFlag {
		return nil, ErrTokenInvalid
	}

	// the presented refresh token is single use
	s.revoke(ctx, claims)

	return s.issue(user)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, accessClaims *jwt.Claims, refresh string) error {
	if accessClaims != nil {
		s.revoke(ctx, accessClaims)
	}
	if refresh == "" {
		return nil
	}

	claims, err := s.jwtMgr.ParseToken(refresh)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return ErrTokenInvalid
	}
	if accessClaims != nil && claims.UserID != accessClaims.UserID {
		return ErrTokenInvalid
	}
	s.revoke(ctx, claims)
	return nil
}

// ────────────────────── CurrentUser ──────────────────────

func (s *authService) CurrentUser(ctx context.Context, caller access.Principal) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, s.fail(err, ErrUserNotFound, "user lookup failed", zap.Uint("user_id", caller.UserID))
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ── helpers ──

func (s *authService) issue(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, string(user.Role), user.IsStaff)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.ID, string(user.Role), user.IsStaff)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Access:    accessToken,
		Refresh:   refreshToken,
		ExpiresIn: int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User: dto.TokenUser{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			Role:         string(user.Role),
			Phone:        user.Phone,
			IsActiveFlag: user.IsActiveFlag,
		},
	}, nil
}

func (s *authService) revoke(ctx context.Context, claims *jwt.Claims) {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("token revocation failed", zap.String("jti", claims.ID), zap.Error(err))
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         string(u.Role),
		Expertise:    u.Expertise,
		Designation:  u.Designation,
		IsActiveFlag: u.IsActiveFlag,
		IsStaff:      u.IsStaff,
	}
}
