package service

import "errors"

// ── business errors ──
//
// Handlers map these with errors.Is. Field-level validation failures are
// returned as *apperrors.FieldError instead.

var (
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrTokenInvalid       = errors.New("token is invalid or expired")

	ErrUserNotFound     = errors.New("user not found")
	ErrCannotDeleteSelf = errors.New("you cannot deactivate your own account")

	ErrProgramNotFound = errors.New("program not found")
	ErrTopicNotFound   = errors.New("program topic not found")

	ErrBatchNotFound        = errors.New("batch not found")
	ErrBatchTrainerNotFound = errors.New("batch trainer not found")
	ErrBatchTraineeNotFound = errors.New("batch trainee not found")
	ErrBatchNoStartDate     = errors.New("batch has no start date")

	ErrDesignationNotFound        = errors.New("designation not found")
	ErrDesignationProgramNotFound = errors.New("designation program not found")
	ErrTraineeDesignationNotFound = errors.New("trainee designation not found")

	ErrProgressNotFound = errors.New("progress record not found")
	ErrClassNotFound    = errors.New("class not found")
	ErrAuditLogNotFound = errors.New("audit log not found")
)
