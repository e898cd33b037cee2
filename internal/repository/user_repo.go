package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
)

// UserRepository user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint, scopes ...Scope) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	Update(ctx context.Context, user *model.User) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p ListParams, scopes ...Scope) ([]model.User, int64, error)
	ListByIDs(ctx context.Context, ids []uint) ([]model.User, error)
}

var userListSpec = ListSpec{
	Filters:  map[string]FilterKind{"role": FilterString, "is_active_flag": FilterBool},
	Search:   []string{"username", "email", "first_name", "last_name"},
	Ordering: []string{"id", "username", "email"},
	Default:  []string{"id"},
}

type userRepo struct {
	*crud[model.User]
}

// NewUserRepo creates a UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{crud: newCrud[model.User](db, userListSpec)}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the oldest account with the address; emails are not unique.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&n).Error
	return n > 0, err
}

func (r *userRepo) ListByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	var users []model.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
