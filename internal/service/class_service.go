package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

const classesTable = "classes"

// ClassService standalone class sessions.
type ClassService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Class], error)
	Get(ctx context.Context, id uint) (*model.Class, error)
	Create(ctx context.Context, req *dto.CreateClassRequest, caller access.Principal) (*model.Class, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClassRequest, caller access.Principal) (*model.Class, error)
	Delete(ctx context.Context, id uint, caller access.Principal) error
}

type classService struct {
	base
}

// NewClassService creates a ClassService.
func NewClassService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) ClassService {
	return &classService{base: base{repo: repo, audit: recorder, logger: logger}}
}

func (s *classService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Class], error) {
	rows, total, err := s.repo.Class.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list classes failed")
	}
	return newPage(rows, total, q), nil
}

func (s *classService) Get(ctx context.Context, id uint) (*model.Class, error) {
	c, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrClassNotFound, "get class failed", zap.Uint("id", id))
	}
	return c, nil
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest, caller access.Principal) (*model.Class, error) {
	createdBy := caller.UserID
	c := &model.Class{
		Name:           req.Name,
		TrainerName:    req.TrainerName,
		ClassTimings:   req.ClassTimings,
		GoogleMeetLink: req.GoogleMeetLink,
		Description:    req.Description,
		IsActive:       boolOr(req.IsActive, true),
		CreatedBy:      &createdBy,
	}
	if err := s.repo.Class.Create(ctx, c); err != nil {
		return nil, s.fail(err, nil, "create class failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: classesTable, ID: c.ID},
		nil, classSnapshot(c), audit.ActorFrom(caller))
	return c, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *dto.UpdateClassRequest, caller access.Principal) (*model.Class, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := classSnapshot(c)

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TrainerName != nil {
		c.TrainerName = *req.TrainerName
	}
	if req.ClassTimings != nil {
		c.ClassTimings = *req.ClassTimings
	}
	if req.GoogleMeetLink != nil {
		c.GoogleMeetLink = req.GoogleMeetLink
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Class.Update(ctx, c); err != nil {
		return nil, s.fail(err, nil, "update class failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: classesTable, ID: c.ID},
		before, classSnapshot(c), audit.ActorFrom(caller))
	return c, nil
}

func (s *classService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Class.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete class failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: classesTable, ID: id},
		classSnapshot(c), nil, audit.ActorFrom(caller))
	return nil
}

func classSnapshot(c *model.Class) audit.Snapshot {
	return audit.Snapshot{"name": c.Name, "trainer_name": c.TrainerName, "class_timings": c.ClassTimings}
}
