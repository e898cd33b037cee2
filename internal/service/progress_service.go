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

const progressTable = "progress_records"

// ProgressService progress records. Callers without the staff flag only
// ever see records that reference themselves.
type ProgressService interface {
	List(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*dto.Page[model.ProgressRecord], error)
	Get(ctx context.Context, id uint, caller access.Principal) (*model.ProgressRecord, error)
	Create(ctx context.Context, req *dto.CreateProgressRequest, caller access.Principal) (*model.ProgressRecord, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProgressRequest, caller access.Principal) (*model.ProgressRecord, error)
	Delete(ctx context.Context, id uint, caller access.Principal) error
}

type progressService struct {
	base
}

// NewProgressService creates a ProgressService.
func NewProgressService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) ProgressService {
	return &progressService{base: base{repo: repo, audit: recorder, logger: logger}}
}

func progressScope(caller access.Principal) []repository.Scope {
	if caller.SeesAllProgress() {
		return nil
	}
	return []repository.Scope{repository.OwnedBy("trainee_id", caller.UserID)}
}

func (s *progressService) List(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*dto.Page[model.ProgressRecord], error) {
	rows, total, err := s.repo.Progress.List(ctx, listParams(q), progressScope(caller)...)
	if err != nil {
		return nil, s.fail(err, nil, "list progress records failed")
	}
	return newPage(rows, total, q), nil
}

func (s *progressService) Get(ctx context.Context, id uint, caller access.Principal) (*model.ProgressRecord, error) {
	pr, err := s.repo.Progress.GetByID(ctx, id, progressScope(caller)...)
	if err != nil {
		return nil, s.fail(err, ErrProgressNotFound, "get progress record failed", zap.Uint("id", id))
	}
	return pr, nil
}

func (s *progressService) Create(ctx context.Context, req *dto.CreateProgressRequest, caller access.Principal) (*model.ProgressRecord, error) {
	traineeID, updatedBy := req.TraineeID, req.UpdatedBy
	if access.IsTrainee(caller) {
		self := caller.UserID
		traineeID, updatedBy = self, &self
	}
	if traineeID == 0 {
		return nil, apperrors.NewFieldError("trainee_id", "This field is required.")
	}

	if err := s.mustExist(ctx, "trainee_id", traineeID, s.repo.User.Exists); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, &req.BatchID, req.TopicID); err != nil {
		return nil, err
	}
	if updatedBy != nil && *updatedBy != caller.UserID {
		if err := s.mustExist(ctx, "updated_by", *updatedBy, s.repo.User.Exists); err != nil {
			return nil, err
		}
	}

	pr := &model.ProgressRecord{
		TraineeID:            traineeID,
		BatchID:              req.BatchID,
		TopicID:              req.TopicID,
		Status:               model.ProgressNotStarted,
		CompletionPercentage: req.CompletionPercentage,
		Notes:                req.Notes,
		UpdatedBy:            updatedBy,
	}
	if req.Status != "" {
		pr.Status = model.ProgressStatus(req.Status)
	}

	if err := s.repo.Progress.Create(ctx, pr); err != nil {
		return nil, s.fail(err, nil, "create progress record failed")
	}

	s.audit.Record(ctx, audit.ActionCreateProgress, audit.Entity{Table: progressTable, ID: pr.ID},
		nil, progressSnapshot(pr), audit.ActorFrom(caller))
	return pr, nil
}

func (s *progressService) Update(ctx context.Context, id uint, req *dto.UpdateProgressRequest, caller access.Principal) (*model.ProgressRecord, error) {
	pr, err := s.Get(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	if req.BatchID != nil && *req.BatchID != pr.BatchID {
		if err := s.checkRefs(ctx, req.BatchID, nil); err != nil {
			return nil, err
		}
		pr.BatchID = *req.BatchID
	}
	if req.TopicID != nil {
		if err := s.checkRefs(ctx, nil, req.TopicID); err != nil {
			return nil, err
		}
		pr.TopicID = req.TopicID
	}
	if req.Status != nil {
		pr.Status = model.ProgressStatus(*req.Status)
	}
	if req.CompletionPercentage != nil {
		pr.CompletionPercentage = *req.CompletionPercentage
	}
	if req.Notes != nil {
		pr.Notes = req.Notes
	}
	if access.IsTrainee(caller) {
		self := caller.UserID
		pr.UpdatedBy = &self
	}

	if err := s.repo.Progress.Update(ctx, pr); err != nil {
		return nil, s.fail(err, nil, "update progress record failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdateProgress, audit.Entity{Table: progressTable, ID: pr.ID},
		nil, progressSnapshot(pr), audit.ActorFrom(caller))
	return pr, nil
}

func (s *progressService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	pr, err := s.Get(ctx, id, caller)
	if err != nil {
		return err
	}
	if err := s.repo.Progress.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete progress record failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDeleteProgress, audit.Entity{Table: progressTable, ID: id},
		progressSnapshot(pr), nil, audit.ActorFrom(caller))
	return nil
}

func (s *progressService) checkRefs(ctx context.Context, batchID, topicID *uint) error {
	if batchID != nil {
		if err := s.mustExist(ctx, "batch_id", *batchID, s.repo.Batch.Exists); err != nil {
			return err
		}
	}
	if topicID != nil {
		if err := s.mustExist(ctx, "topic_id", *topicID, s.repo.Topic.Exists); err != nil {
			return err
		}
	}
	return nil
}

func progressSnapshot(pr *model.ProgressRecord) audit.Snapshot {
	return audit.Snapshot{"status": string(pr.Status), "completion": pr.CompletionPercentage}
}
