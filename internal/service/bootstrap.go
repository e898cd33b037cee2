package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

// AdminAccount is the superuser maintained by cmd/createadmin.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// EnsureAdmin creates the admin account, or resets its password and
// privileges when the username exists. It reports whether a user was created.
func EnsureAdmin(ctx context.Context, repo *repository.Repository, acct AdminAccount) (bool, error) {
	if err := validatePassword("password", acct.Password, acct.Username); err != nil {
		return false, err
	}
	hash, err := hashPassword(acct.Password)
	if err != nil {
		return false, err
	}

	u, err := repo.User.GetByUsername(ctx, acct.Username)
	switch {
	case err == nil:
		u.PasswordHash = hash
		u.Role = model.RoleAdmin
		u.IsStaff, u.IsSuperuser, u.IsActiveFlag = true, true, true
		return false, repo.User.Update(ctx, u)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return true, repo.User.Create(ctx, &model.User{
			Username:     acct.Username,
			Email:        acct.Email,
			PasswordHash: hash,
			FirstName:    "Super",
			LastName:     "Admin",
			Role:         model.RoleAdmin,
			IsActiveFlag: true,
			IsStaff:      true,
			IsSuperuser:  true,
		})
	default:
		return false, err
	}
}

type sampleUser struct {
	username, password, first, last string
	role                            model.Role
}

var sampleUsers = []sampleUser{
	{"trainer1", "trainerpass", "Tina", "Trainer", model.RoleTrainer},
	{"trainee1", "traineepass", "Tom", "Trainee", model.RoleTrainee},
}

// EnsureSampleUsers creates trainer1 and trainee1 when absent and returns
// the usernames it created.
func EnsureSampleUsers(ctx context.Context, repo *repository.Repository) ([]string, error) {
	var created []string
	for _, s := range sampleUsers {
		taken, err := repo.User.UsernameTaken(ctx, s.username, 0)
		if err != nil {
			return created, err
		}
		if taken {
			continue
		}
		hash, err := hashPassword(s.password)
		if err != nil {
			return created, err
		}
		if err := repo.User.Create(ctx, &model.User{
			Username:     s.username,
			Email:        s.username + "@example.com",
			PasswordHash: hash,
			FirstName:    s.first,
			LastName:     s.last,
			Role:         s.role,
			IsActiveFlag: true,
		}); err != nil {
			return created, err
		}
		created = append(created, s.username)
	}
	return created, nil
}
