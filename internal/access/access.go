// Package access holds the authenticated principal and the role predicates
// that gate every resource.
package access

import "github.com/Yasheenyash33/training-tracker-Dash/internal/model"

// Principal is the caller behind an authenticated request.
type Principal struct {
	UserID    uint
	Role      model.Role
	IsStaff   bool
	IP        string
	UserAgent string
}

// Predicate decides whether a principal may perform an operation.
type Predicate func(p Principal) bool

// IsAdmin staff flag set.
func IsAdmin(p Principal) bool {
	return p.IsStaff
}

// IsTrainer role == trainer.
func IsTrainer(p Principal) bool {
	switch p.Role {
	case model.RoleTrainer:
		return true
	case model.RoleAdmin, model.RoleTrainee:
		return false
	default:
		return false
	}
}

// IsTrainee role == trainee.
func IsTrainee(p Principal) bool {
	switch p.Role {
	case model.RoleTrainee:
		return true
	case model.RoleAdmin, model.RoleTrainer:
		return false
	default:
		return false
	}
}

// IsTrainerOrAdmin staff OR role == trainer.
func IsTrainerOrAdmin(p Principal) bool {
	return IsAdmin(p) || IsTrainer(p)
}

// Authenticated admits any principal.
func Authenticated(Principal) bool {
	return true
}

// SeesAllEnrollments reports whether p may see every batch_trainees row.
// Trainees only see their own enrollments.
func (p Principal) SeesAllEnrollments() bool {
	if p.IsStaff {
		return true
	}
	switch p.Role {
	case model.RoleTrainee:
		return false
	case model.RoleAdmin, model.RoleTrainer:
		return true
	default:
		return false
	}
}

// SeesAllProgress reports whether p may see every progress_records row.
// Everyone except staff is limited to their own records.
func (p Principal) SeesAllProgress() bool {
	return p.IsStaff
}
