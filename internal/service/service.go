package service

import (
	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/mailer"
)

// Service aggregates every service.
type Service struct {
	Auth          AuthService
	PasswordReset PasswordResetService
	User          UserService
	Program       ProgramService
	Batch         BatchService
	Designation   DesignationService
	Progress      ProgressService
	Class         ClassService
	AuditLog      AuditLogService
	Export        ExportService
	Calendar      CalendarService
}

// Deps collects the collaborators shared by the services.
type Deps struct {
	Config    *config.Config
	Repo      *repository.Repository
	JWT       *jwt.Manager
	Blacklist TokenBlacklist
	Mailer    mailer.Sender
	Audit     audit.Recorder
	Logger    *zap.Logger
}

// NewService wires all services.
func NewService(d Deps) *Service {
	return &Service{
		Auth:          NewAuthService(d.Repo, d.JWT, d.Blacklist, d.Audit, d.Logger),
		PasswordReset: NewPasswordResetService(d.Config, d.Repo, d.Mailer, d.Audit, d.Logger),
		User:          NewUserService(d.Repo, d.Audit, d.Logger),
		Program:       NewProgramService(d.Repo, d.Audit, d.Logger),
		Batch:         NewBatchService(d.Repo, d.Audit, d.Logger),
		Designation:   NewDesignationService(d.Repo, d.Audit, d.Logger),
		Progress:      NewProgressService(d.Repo, d.Audit, d.Logger),
		Class:         NewClassService(d.Repo, d.Audit, d.Logger),
		AuditLog:      NewAuditLogService(d.Repo, d.Logger),
		Export:        NewExportService(d.Repo, d.Logger),
		Calendar:      NewCalendarService(d.Repo, d.Config.Server.BaseURL, d.Logger),
	}
}
