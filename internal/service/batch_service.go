package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

const (
	batchesTable       = "batches"
	batchTrainersTable = "batch_trainers"
	batchTraineesTable = "batch_trainees"
)

// BatchService batches, trainer assignments and enrollments.
type BatchService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Batch], error)
	Get(ctx context.Context, id uint) (*model.Batch, error)
	Create(ctx context.Context, req *dto.CreateBatchRequest, caller access.Principal) (*model.Batch, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBatchRequest, caller access.Principal) (*model.Batch, error)
	Delete(ctx context.Context, id uint, caller access.Principal) error

	ListTrainers(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.BatchTrainer], error)
	GetTrainer(ctx context.Context, id uint) (*model.BatchTrainer, error)
	AssignTrainer(ctx context.Context, req *dto.CreateBatchTrainerRequest, caller access.Principal) (*model.BatchTrainer, error)
	UpdateTrainer(ctx context.Context, id uint, req *dto.UpdateBatchTrainerRequest, caller access.Principal) (*model.BatchTrainer, error)
	RemoveTrainer(ctx context.Context, id uint, caller access.Principal) error

	// Enrollment reads and writes are limited to the caller's own rows
	// when the caller is a trainee.
	ListTrainees(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*dto.Page[model.BatchTrainee], error)
	GetTrainee(ctx context.Context, id uint, caller access.Principal) (*model.BatchTrainee, error)
	Enroll(ctx context.Context, req *dto.CreateBatchTraineeRequest, caller access.Principal) (*model.BatchTrainee, error)
	UpdateTrainee(ctx context.Context, id uint, req *dto.UpdateBatchTraineeRequest, caller access.Principal) (*model.BatchTrainee, error)
	RemoveTrainee(ctx context.Context, id uint, caller access.Principal) error
}

type batchService struct {
	base
}

// NewBatchService creates a BatchService.
func NewBatchService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) BatchService {
	return &batchService{base: base{repo: repo, audit: recorder, logger: logger}}
}

// ────────────────────── batches ──────────────────────

func (s *batchService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Batch], error) {
	batches, total, err := s.repo.Batch.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list batches failed")
	}
	return newPage(batches, total, q), nil
}

func (s *batchService) Get(ctx context.Context, id uint) (*model.Batch, error) {
	b, err := s.repo.Batch.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrBatchNotFound, "get batch failed", zap.Uint("id", id))
	}
	return b, nil
}

func (s *batchService) Create(ctx context.Context, req *dto.CreateBatchRequest, caller access.Principal) (*model.Batch, error) {
	if err := s.mustExist(ctx, "program_id", req.ProgramID, s.repo.Program.Exists); err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	status := model.BatchScheduled
	if req.Status != "" {
		status = model.BatchStatus(req.Status)
	}
	createdBy := caller.UserID
	b := &model.Batch{
		Name:        req.Name,
		ProgramID:   req.ProgramID,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		MaxCapacity: req.MaxCapacity,
		CreatedBy:   &createdBy,
	}
	if err := validateSpan(b); err != nil {
		return nil, err
	}

	if err := s.repo.Batch.Create(ctx, b); err != nil {
		return nil, s.fail(err, nil, "create batch failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: batchesTable, ID: b.ID},
		nil, batchSnapshot(b), audit.ActorFrom(caller))
	return b, nil
}

func (s *batchService) Update(ctx context.Context, id uint, req *dto.UpdateBatchRequest, caller access.Principal) (*model.Batch, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := batchSnapshot(b)

	if req.ProgramID != nil && *req.ProgramID != b.ProgramID {
		if err := s.mustExist(ctx, "program_id", *req.ProgramID, s.repo.Program.Exists); err != nil {
			return nil, err
		}
		b.ProgramID = *req.ProgramID
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.StartDate != nil {
		if b.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if b.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		b.Status = model.BatchStatus(*req.Status)
	}
	if req.MaxCapacity != nil {
		b.MaxCapacity = *req.MaxCapacity
	}
	if err := validateSpan(b); err != nil {
		return nil, err
	}

	if err := s.repo.Batch.Update(ctx, b); err != nil {
		return nil, s.fail(err, nil, "update batch failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: batchesTable, ID: b.ID},
		before, batchSnapshot(b), audit.ActorFrom(caller))
	return b, nil
}

func (s *batchService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Batch.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete batch failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: batchesTable, ID: id},
		batchSnapshot(b), nil, audit.ActorFrom(caller))
	return nil
}

// validateSpan rejects an end date before the start date.
func validateSpan(b *model.Batch) error {
	if b.StartDate == nil || b.EndDate == nil {
		return nil
	}
	if time.Time(*b.EndDate).Before(time.Time(*b.StartDate)) {
		return apperrors.NewFieldError("end_date", "End date must not be before start date.")
	}
	return nil
}

func batchSnapshot(b *model.Batch) audit.Snapshot {
	return audit.Snapshot{
		"name":       b.Name,
		"program_id": b.ProgramID,
		"status":     string(b.Status),
		"start_date": dateString(b.StartDate),
		"end_date":   dateString(b.EndDate),
	}
}

// ────────────────────── trainers ──────────────────────

func (s *batchService) ListTrainers(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.BatchTrainer], error) {
	rows, total, err := s.repo.BatchTrainer.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list batch trainers failed")
	}
	return newPage(rows, total, q), nil
}

func (s *batchService) GetTrainer(ctx context.Context, id uint) (*model.BatchTrainer, error) {
	bt, err := s.repo.BatchTrainer.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrBatchTrainerNotFound, "get batch trainer failed", zap.Uint("id", id))
	}
	return bt, nil
}

func (s *batchService) AssignTrainer(ctx context.Context, req *dto.CreateBatchTrainerRequest, caller access.Principal) (*model.BatchTrainer, error) {
	if err := s.checkTrainerLink(ctx, req.BatchID, req.TrainerID, 0); err != nil {
		return nil, err
	}

	bt := &model.BatchTrainer{BatchID: req.BatchID, TrainerID: req.TrainerID, IsLead: req.IsLead}
	if err := s.repo.BatchTrainer.Create(ctx, bt); err != nil {
		return nil, s.fail(err, nil, "assign trainer failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: batchTrainersTable, ID: bt.ID},
		nil, trainerLinkSnapshot(bt), audit.ActorFrom(caller))
	return bt, nil
}

func (s *batchService) UpdateTrainer(ctx context.Context, id uint, req *dto.UpdateBatchTrainerRequest, caller access.Principal) (*model.BatchTrainer, error) {
	bt, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	before := trainerLinkSnapshot(bt)

	batchID, trainerID := bt.BatchID, bt.TrainerID
	if req.BatchID != nil {
		batchID = *req.BatchID
	}
	if req.TrainerID != nil {
		trainerID = *req.TrainerID
	}
	if batchID != bt.BatchID || trainerID != bt.TrainerID {
		if err := s.checkTrainerLink(ctx, batchID, trainerID, bt.ID); err != nil {
			return nil, err
		}
		bt.BatchID, bt.TrainerID = batchID, trainerID
	}
	if req.IsLead != nil {
		bt.IsLead = *req.IsLead
	}

	if err := s.repo.BatchTrainer.Update(ctx, bt); err != nil {
		return nil, s.fail(err, nil, "update batch trainer failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: batchTrainersTable, ID: bt.ID},
		before, trainerLinkSnapshot(bt), audit.ActorFrom(caller))
	return bt, nil
}

func (s *batchService) RemoveTrainer(ctx context.Context, id uint, caller access.Principal) error {
	bt, err := s.GetTrainer(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.BatchTrainer.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete batch trainer failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: batchTrainersTable, ID: id},
		trainerLinkSnapshot(bt), nil, audit.ActorFrom(caller))
	return nil
}

func (s *batchService) checkTrainerLink(ctx context.Context, batchID, trainerID, excludeID uint) error {
	if err := s.mustExist(ctx, "batch_id", batchID, s.repo.Batch.Exists); err != nil {
		return err
	}
	if err := s.mustExist(ctx, "trainer_id", trainerID, s.repo.User.Exists); err != nil {
		return err
	}
	linked, err := s.repo.BatchTrainer.Linked(ctx, batchID, trainerID, excludeID)
	if err != nil {
		return s.fail(err, nil, "batch trainer lookup failed")
	}
	if linked {
		return apperrors.NewFieldError("non_field_errors", "The fields batch, trainer must make a unique set.")
	}
	return nil
}

func trainerLinkSnapshot(bt *model.BatchTrainer) audit.Snapshot {
	return audit.Snapshot{"batch_id": bt.BatchID, "trainer_id": bt.TrainerID, "is_lead": bt.IsLead}
}

// ────────────────────── trainees ──────────────────────

func enrollmentScope(caller access.Principal) []repository.Scope {
	if caller.SeesAllEnrollments() {
		return nil
	}
	return []repository.Scope{repository.OwnedBy("trainee_id", caller.UserID)}
}

func (s *batchService) ListTrainees(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*dto.Page[model.BatchTrainee], error) {
	rows, total, err := s.repo.BatchTrainee.List(ctx, listParams(q), enrollmentScope(caller)...)
	if err != nil {
		return nil, s.fail(err, nil, "list batch trainees failed")
	}
	return newPage(rows, total, q), nil
}

func (s *batchService) GetTrainee(ctx context.Context, id uint, caller access.Principal) (*model.BatchTrainee, error) {
	bt, err := s.repo.BatchTrainee.GetByID(ctx, id, enrollmentScope(caller)...)
	if err != nil {
		return nil, s.fail(err, ErrBatchTraineeNotFound, "get batch trainee failed", zap.Uint("id", id))
	}
	return bt, nil
}

func (s *batchService) Enroll(ctx context.Context, req *dto.CreateBatchTraineeRequest, caller access.Principal) (*model.BatchTrainee, error) {
	traineeID := req.TraineeID
	if !caller.SeesAllEnrollments() {
		traineeID = caller.UserID
	}
	if traineeID == 0 {
		return nil, apperrors.NewFieldError("trainee_id", "This field is required.")
	}
	if err := s.checkTraineeLink(ctx, req.BatchID, traineeID, 0); err != nil {
		return nil, err
	}

	bt := &model.BatchTrainee{
		BatchID:   req.BatchID,
		TraineeID: traineeID,
		Status:    model.EnrollmentEnrolled,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
	}
	if req.Status != "" {
		bt.Status = model.EnrollmentStatus(req.Status)
	}
	var err error
	if bt.EnrollmentDate, err = parseDate("enrollment_date", req.EnrollmentDate); err != nil {
		return nil, err
	}
	if bt.CompletionDate, err = parseDate("completion_date", req.CompletionDate); err != nil {
		return nil, err
	}

	if err := s.repo.BatchTrainee.Create(ctx, bt); err != nil {
		return nil, s.fail(err, nil, "enroll trainee failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: batchTraineesTable, ID: bt.ID},
		nil, enrollmentSnapshot(bt), audit.ActorFrom(caller))
	return bt, nil
}

func (s *batchService) UpdateTrainee(ctx context.Context, id uint, req *dto.UpdateBatchTraineeRequest, caller access.Principal) (*model.BatchTrainee, error) {
	bt, err := s.GetTrainee(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	before := enrollmentSnapshot(bt)

	batchID, traineeID := bt.BatchID, bt.TraineeID
	if req.BatchID != nil {
		batchID = *req.BatchID
	}
	if req.TraineeID != nil && caller.SeesAllEnrollments() {
		traineeID = *req.TraineeID
	}
	if batchID != bt.BatchID || traineeID != bt.TraineeID {
		if err := s.checkTraineeLink(ctx, batchID, traineeID, bt.ID); err != nil {
			return nil, err
		}
		bt.BatchID, bt.TraineeID = batchID, traineeID
	}
	if req.EnrollmentDate != nil {
		if bt.EnrollmentDate, err = parseDate("enrollment_date", req.EnrollmentDate); err != nil {
			return nil, err
		}
	}
	if req.CompletionDate != nil {
		if bt.CompletionDate, err = parseDate("completion_date", req.CompletionDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		bt.Status = model.EnrollmentStatus(*req.Status)
	}
	if req.Rating != nil {
		bt.Rating = req.Rating
	}
	if req.Feedback != nil {
		bt.Feedback = req.Feedback
	}

	if err := s.repo.BatchTrainee.Update(ctx, bt); err != nil {
		return nil, s.fail(err, nil, "update batch trainee failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: batchTraineesTable, ID: bt.ID},
		before, enrollmentSnapshot(bt), audit.ActorFrom(caller))
	return bt, nil
}

func (s *batchService) RemoveTrainee(ctx context.Context, id uint, caller access.Principal) error {
	bt, err := s.GetTrainee(ctx, id, caller)
	if err != nil {
		return err
	}
	if err := s.repo.BatchTrainee.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete batch trainee failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: batchTraineesTable, ID: id},
		enrollmentSnapshot(bt), nil, audit.ActorFrom(caller))
	return nil
}

func (s *batchService) checkTraineeLink(ctx context.Context, batchID, traineeID, excludeID uint) error {
	if err := s.mustExist(ctx, "batch_id", batchID, s.repo.Batch.Exists); err != nil {
		return err
	}
	if err := s.mustExist(ctx, "trainee_id", traineeID, s.repo.User.Exists); err != nil {
		return err
	}
	linked, err := s.repo.BatchTrainee.Linked(ctx, batchID, traineeID, excludeID)
	if err != nil {
		return s.fail(err, nil, "batch trainee lookup failed")
	}
	if linked {
		return apperrors.NewFieldError("non_field_errors", "The fields batch, trainee must make a unique set.")
	}
	return nil
}

func enrollmentSnapshot(bt *model.BatchTrainee) audit.Snapshot {
	return audit.Snapshot{"batch_id": bt.BatchID, "trainee_id": bt.TraineeID, "status": string(bt.Status)}
}
