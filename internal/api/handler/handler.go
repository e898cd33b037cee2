package handler

import "github.com/Yasheenyash33/training-tracker-Dash/internal/service"

// Handler aggregates every handler.
type Handler struct {
	Auth          *AuthHandler
	PasswordReset *PasswordResetHandler
	User          *UserHandler
	Program       *ProgramHandler
	Batch         *BatchHandler
	Designation   *DesignationHandler
	Progress      *ProgressHandler
	Class         *ClassHandler
	AuditLog      *AuditLogHandler
	Export        *ExportHandler
}

// NewHandler wires handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		PasswordReset: NewPasswordResetHandler(svc.PasswordReset),
		User:          NewUserHandler(svc.User),
		Program:       NewProgramHandler(svc.Program),
		Batch:         NewBatchHandler(svc.Batch),
		Designation:   NewDesignationHandler(svc.Designation),
		Progress:      NewProgressHandler(svc.Progress),
		Class:         NewClassHandler(svc.Class),
		AuditLog:      NewAuditLogHandler(svc.AuditLog),
		Export:        NewExportHandler(svc.Export, svc.Calendar),
	}
}
