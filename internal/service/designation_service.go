package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

const (
	designationsTable        = "designations"
	designationProgramsTable = "designation_programs"
	traineeDesignationsTable = "trainee_designations"
)

// DesignationService designations, their required programs and trainee assignments.
type DesignationService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Designation], error)
	Get(ctx context.Context, id uint) (*model.Designation, error)
	Create(ctx context.Context, req *dto.CreateDesignationRequest, caller access.Principal) (*model.Designation, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDesignationRequest, caller access.Principal) (*model.Designation, error)
	Delete(ctx context.Context, id uint, caller access.Principal) error

	ListPrograms(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.DesignationProgram], error)
	GetProgram(ctx context.Context, id uint) (*model.DesignationProgram, error)
	LinkProgram(ctx context.Context, req *dto.CreateDesignationProgramRequest, caller access.Principal) (*model.DesignationProgram, error)
	UpdateProgram(ctx context.Context, id uint, req *dto.UpdateDesignationProgramRequest, caller access.Principal) (*model.DesignationProgram, error)
	UnlinkProgram(ctx context.Context, id uint, caller access.Principal) error

	ListAssignments(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.TraineeDesignation], error)
	GetAssignment(ctx context.Context, id uint) (*model.TraineeDesignation, error)
	Assign(ctx context.Context, req *dto.CreateTraineeDesignationRequest, caller access.Principal) (*model.TraineeDesignation, error)
	UpdateAssignment(ctx context.Context, id uint, req *dto.UpdateTraineeDesignationRequest, caller access.Principal) (*model.TraineeDesignation, error)
	Unassign(ctx context.Context, id uint, caller access.Principal) error
}

type designationService struct {
	base
	now func() time.Time
}

// NewDesignationService creates a DesignationService.
func NewDesignationService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) DesignationService {
	return &designationService{base: base{repo: repo, audit: recorder, logger: logger}, now: time.Now}
}

// ────────────────────── designations ──────────────────────

func (s *designationService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Designation], error) {
	rows, total, err := s.repo.Designation.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list designations failed")
	}
	return newPage(rows, total, q), nil
}

func (s *designationService) Get(ctx context.Context, id uint) (*model.Designation, error) {
	d, err := s.repo.Designation.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrDesignationNotFound, "get designation failed", zap.Uint("id", id))
	}
	return d, nil
}

func (s *designationService) Create(ctx context.Context, req *dto.CreateDesignationRequest, caller access.Principal) (*model.Designation, error) {
	d := &model.Designation{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    boolOr(req.IsActive, true),
	}
	if err := s.repo.Designation.Create(ctx, d); err != nil {
		return nil, s.fail(err, nil, "create designation failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: designationsTable, ID: d.ID},
		nil, designationSnapshot(d), audit.ActorFrom(caller))
	return d, nil
}

func (s *designationService) Update(ctx context.Context, id uint, req *dto.UpdateDesignationRequest, caller access.Principal) (*model.Designation, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := designationSnapshot(d)

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := s.repo.Designation.Update(ctx, d); err != nil {
		return nil, s.fail(err, nil, "update designation failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: designationsTable, ID: d.ID},
		before, designationSnapshot(d), audit.ActorFrom(caller))
	return d, nil
}

func (s *designationService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	d, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Designation.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete designation failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: designationsTable, ID: id},
		designationSnapshot(d), nil, audit.ActorFrom(caller))
	return nil
}

func designationSnapshot(d *model.Designation) audit.Snapshot {
	return audit.Snapshot{"name": d.Name, "is_active": d.IsActive}
}

// ────────────────────── designation programs ──────────────────────

func (s *designationService) ListPrograms(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.DesignationProgram], error) {
	rows, total, err := s.repo.DesignationProgram.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list designation programs failed")
	}
	return newPage(rows, total, q), nil
}

func (s *designationService) GetProgram(ctx context.Context, id uint) (*model.DesignationProgram, error) {
	dp, err := s.repo.DesignationProgram.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrDesignationProgramNotFound, "get designation program failed", zap.Uint("id", id))
	}
	return dp, nil
}

func (s *designationService) LinkProgram(ctx context.Context, req *dto.CreateDesignationProgramRequest, caller access.Principal) (*model.DesignationProgram, error) {
	if err := s.checkProgramLink(ctx, req.DesignationID, req.ProgramID, 0); err != nil {
		return nil, err
	}

	dp := &model.DesignationProgram{
		DesignationID: req.DesignationID,
		ProgramID:     req.ProgramID,
		IsRequired:    boolOr(req.IsRequired, true),
	}
	if err := s.repo.DesignationProgram.Create(ctx, dp); err != nil {
		return nil, s.fail(err, nil, "link designation program failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: designationProgramsTable, ID: dp.ID},
		nil, programLinkSnapshot(dp), audit.ActorFrom(caller))
	return dp, nil
}

func (s *designationService) UpdateProgram(ctx context.Context, id uint, req *dto.UpdateDesignationProgramRequest, caller access.Principal) (*model.DesignationProgram, error) {
	dp, err := s.GetProgram(ctx, id)
	if err != nil {
		return nil, err
	}
	before := programLinkSnapshot(dp)

	designationID, programID := dp.DesignationID, dp.ProgramID
	if req.DesignationID != nil {
		designationID = *req.DesignationID
	}
	if req.ProgramID != nil {
		programID = *req.ProgramID
	}
	if designationID != dp.DesignationID || programID != dp.ProgramID {
		if err := s.checkProgramLink(ctx, designationID, programID, dp.ID); err != nil {
			return nil, err
		}
		dp.DesignationID, dp.ProgramID = designationID, programID
	}
	if req.IsRequired != nil {
		dp.IsRequired = *req.IsRequired
	}

	if err := s.repo.DesignationProgram.Update(ctx, dp); err != nil {
		return nil, s.fail(err, nil, "update designation program failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: designationProgramsTable, ID: dp.ID},
		before, programLinkSnapshot(dp), audit.ActorFrom(caller))
	return dp, nil
}

func (s *designationService) UnlinkProgram(ctx context.Context, id uint, caller access.Principal) error {
	dp, err := s.GetProgram(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DesignationProgram.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete designation program failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: designationProgramsTable, ID: id},
		programLinkSnapshot(dp), nil, audit.ActorFrom(caller))
	return nil
}

func (s *designationService) checkProgramLink(ctx context.Context, designationID, programID, excludeID uint) error {
	if err := s.mustExist(ctx, "designation_id", designationID, s.repo.Designation.Exists); err != nil {
		return err
	}
	if err := s.mustExist(ctx, "program_id", programID, s.repo.Program.Exists); err != nil {
		return err
	}
	linked, err := s.repo.DesignationProgram.Linked(ctx, designationID, programID, excludeID)
	if err != nil {
		return s.fail(err, nil, "designation program lookup failed")
	}
	if linked {
		return apperrors.NewFieldError("non_field_errors", "The fields designation, program must make a unique set.")
	}
	return nil
}

func programLinkSnapshot(dp *model.DesignationProgram) audit.Snapshot {
	return audit.Snapshot{"designation_id": dp.DesignationID, "program_id": dp.ProgramID, "is_required": dp.IsRequired}
}

// ────────────────────── trainee designations ──────────────────────

func (s *designationService) ListAssignments(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.TraineeDesignation], error) {
	rows, total, err := s.repo.TraineeDesignation.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list trainee designations failed")
	}
	return newPage(rows, total, q), nil
}

func (s *designationService) GetAssignment(ctx context.Context, id uint) (*model.TraineeDesignation, error) {
	td, err := s.repo.TraineeDesignation.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrTraineeDesignationNotFound, "get trainee designation failed", zap.Uint("id", id))
	}
	return td, nil
}

func (s *designationService) Assign(ctx context.Context, req *dto.CreateTraineeDesignationRequest, caller access.Principal) (*model.TraineeDesignation, error) {
	if err := s.checkAssignment(ctx, req.TraineeID, req.DesignationID, 0); err != nil {
		return nil, err
	}
	assigned, err := parseDate("assigned_date", req.AssignedDate)
	if err != nil {
		return nil, err
	}
	if assigned == nil {
		today := datatypes.Date(s.now())
		assigned = &today
	}

	createdBy := caller.UserID
	td := &model.TraineeDesignation{
		TraineeID:     req.TraineeID,
		DesignationID: req.DesignationID,
		AssignedDate:  *assigned,
		CreatedBy:     &createdBy,
	}
	if err := s.repo.TraineeDesignation.Create(ctx, td); err != nil {
		return nil, s.fail(err, nil, "assign designation failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: traineeDesignationsTable, ID: td.ID},
		nil, assignmentSnapshot(td), audit.ActorFrom(caller))
	return td, nil
}

func (s *designationService) UpdateAssignment(ctx context.Context, id uint, req *dto.UpdateTraineeDesignationRequest, caller access.Principal) (*model.TraineeDesignation, error) {
	td, err := s.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	before := assignmentSnapshot(td)

	traineeID, designationID := td.TraineeID, td.DesignationID
	if req.TraineeID != nil {
		traineeID = *req.TraineeID
	}
	if req.DesignationID != nil {
		designationID = *req.DesignationID
	}
	if traineeID != td.TraineeID || designationID != td.DesignationID {
		if err := s.checkAssignment(ctx, traineeID, designationID, td.ID); err != nil {
			return nil, err
		}
		td.TraineeID, td.DesignationID = traineeID, designationID
	}
	if req.AssignedDate != nil {
		d, err := parseDate("assigned_date", req.AssignedDate)
		if err != nil {
			return nil, err
		}
		if d != nil {
			td.AssignedDate = *d
		}
	}

	if err := s.repo.TraineeDesignation.Update(ctx, td); err != nil {
		return nil, s.fail(err, nil, "update trainee designation failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: traineeDesignationsTable, ID: td.ID},
		before, assignmentSnapshot(td), audit.ActorFrom(caller))
	return td, nil
}

func (s *designationService) Unassign(ctx context.Context, id uint, caller access.Principal) error {
	td, err := s.GetAssignment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.TraineeDesignation.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete trainee designation failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: traineeDesignationsTable, ID: id},
		assignmentSnapshot(td), nil, audit.ActorFrom(caller))
	return nil
}

func (s *designationService) checkAssignment(ctx context.Context, traineeID, designationID, excludeID uint) error {
	if err := s.mustExist(ctx, "trainee_id", traineeID, s.repo.User.Exists); err != nil {
		return err
	}
	if err := s.mustExist(ctx, "designation_id", designationID, s.repo.Designation.Exists); err != nil {
		return err
	}
	linked, err := s.repo.TraineeDesignation.Linked(ctx, traineeID, designationID, excludeID)
	if err != nil {
		return s.fail(err, nil, "trainee designation lookup failed")
	}
	if linked {
		return apperrors.NewFieldError("non_field_errors", "The fields trainee, designation must make a unique set.")
	}
	return nil
}

func assignmentSnapshot(td *model.TraineeDesignation) audit.Snapshot {
	return audit.Snapshot{
		"trainee_id":     td.TraineeID,
		"designation_id": td.DesignationID,
		"assigned_date":  dateString(&td.AssignedDate),
	}
}
