package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

const usersTable = "users"

// UserService admin-side user management.
type UserService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[dto.UserResponse], error)
	Get(ctx context.Context, id uint) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest, caller access.Principal) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest, caller access.Principal) (*dto.UserResponse, error)
	// Delete deactivates the account; users are never removed.
	Delete(ctx context.Context, id uint, caller access.Principal) error
}

type userService struct {
	base
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) UserService {
	return &userService{base: base{repo: repo, audit: recorder, logger: logger}}
}

func (s *userService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[dto.UserResponse], error) {
	users, total, err := s.repo.User.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list users failed")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return newPage(out, total, q), nil
}

func (s *userService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrUserNotFound, "get user failed", zap.Uint("id", id))
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest, caller access.Principal) (*dto.UserResponse, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewFieldError("role", err.Error())
	}
	if err := s.ensureUsernameFree(ctx, req.Username, 0); err != nil {
		return nil, err
	}

	hash := unusablePassword
	if req.Password != "" {
		if err := validatePassword("password", req.Password, req.Username); err != nil {
			return nil, err
		}
		if hash, err = hashPassword(req.Password); err != nil {
			s.logger.Error("password hashing failed", zap.Error(err))
			return nil, err
		}
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Phone:        req.Phone,
		Expertise:    req.Expertise,
		Designation:  req.Designation,
		IsActiveFlag: boolOr(req.IsActiveFlag, true),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, s.fail(usernameConflict(err), nil, "create user failed", zap.String("username", req.Username))
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: usersTable, ID: user.ID},
		nil, userSnapshot(user), audit.ActorFrom(caller))

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest, caller access.Principal) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrUserNotFound, "get user failed", zap.Uint("id", id))
	}
	before := userSnapshot(user)

	if req.Username != nil && *req.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, *req.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role, err := model.ParseRole(*req.Role)
		if err != nil {
			return nil, apperrors.NewFieldError("role", err.Error())
		}
		user.Role = role
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Expertise != nil {
		user.Expertise = req.Expertise
	}
	if req.Designation != nil {
		user.Designation = req.Designation
	}
	if req.IsActiveFlag != nil {
		if !*req.IsActiveFlag && user.ID == caller.UserID {
			return nil, ErrCannotDeleteSelf
		}
		user.IsActiveFlag = *req.IsActiveFlag
	}
	if req.Password != nil {
		if err := validatePassword("password", *req.Password, user.Username); err != nil {
			return nil, err
		}
		if user.PasswordHash, err = hashPassword(*req.Password); err != nil {
			s.logger.Error("password hashing failed", zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, s.fail(usernameConflict(err), nil, "update user failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: usersTable, ID: user.ID},
		before, userSnapshot(user), audit.ActorFrom(caller))

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	if id == caller.UserID {
		return ErrCannotDeleteSelf
	}
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return s.fail(err, ErrUserNotFound, "get user failed", zap.Uint("id", id))
	}
	if !user.IsActiveFlag {
		return nil
	}

	user.IsActiveFlag = false
	if err := s.repo.User.Update(ctx, user); err != nil {
		return s.fail(err, nil, "deactivate user failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: usersTable, ID: user.ID},
		audit.Snapshot{"username": user.Username, "is_active_flag": true},
		audit.Snapshot{"is_active_flag": false}, audit.ActorFrom(caller))
	return nil
}

func (s *userService) ensureUsernameFree(ctx context.Context, username string, excludeID uint) error {
	taken, err := s.repo.User.UsernameTaken(ctx, username, excludeID)
	if err != nil {
		s.logger.Error("username lookup failed", zap.Error(err))
		return err
	}
	if taken {
		return apperrors.NewFieldError("username", usernameTakenMsg)
	}
	return nil
}

func userSnapshot(u *model.User) audit.Snapshot {
	return audit.Snapshot{
		"username":       u.Username,
		"email":          u.Email,
		"role":           string(u.Role),
		"is_active_flag": u.IsActiveFlag,
	}
}
