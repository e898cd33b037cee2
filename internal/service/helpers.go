package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

const dateLayout = "2006-01-02"

// base is embedded by every resource service.
type base struct {
	repo   *repository.Repository
	audit  audit.Recorder
	logger *zap.Logger
}

// fail turns gorm.ErrRecordNotFound into notFound and logs anything else
// unexpected. Field errors pass through untouched.
func (b *base) fail(err, notFound error, msg string, fields ...zap.Field) error {
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	if _, ok := apperrors.AsFieldError(err); ok {
		return err
	}
	b.logger.Error(msg, append(fields, zap.Error(err))...)
	return err
}

const usernameTakenMsg = "A user with that username already exists."

// usernameConflict maps a unique violation on users.username, raised when
// two writers pass the lookup concurrently, to the username field error.
func usernameConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewFieldError("username", usernameTakenMsg)
	}
	return err
}

// mustExist validates a foreign key supplied in a request body.
func (b *base) mustExist(ctx context.Context, field string, id uint, exists func(context.Context, uint) (bool, error)) error {
	ok, err := exists(ctx, id)
	if err != nil {
		b.logger.Error("reference lookup failed", zap.String("field", field), zap.Uint("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return apperrors.NewFieldError(field, fmt.Sprintf("invalid pk %q - object does not exist", fmt.Sprint(id)))
	}
	return nil
}

func listParams(q *dto.ListQuery) repository.ListParams {
	return repository.ListParams{
		Offset:   q.GetOffset(),
		Limit:    q.GetPageSize(),
		Search:   q.Search,
		Ordering: q.Ordering,
		Filters:  q.Filters,
	}
}

func newPage[T any](items []T, total int64, q *dto.ListQuery) *dto.Page[T] {
	return &dto.Page[T]{List: items, Total: total, Page: q.GetPage(), PageSize: q.GetPageSize()}
}

// parseDate parses an optional "2006-01-02" value.
func parseDate(field string, s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, apperrors.NewFieldError(field, "date has wrong format, use YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}

func dateString(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(dateLayout)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
