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

const (
	programsTable = "programs"
	topicsTable   = "program_topics"
)

// ProgramService programs and their topics.
type ProgramService interface {
	List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Program], error)
	Get(ctx context.Context, id uint) (*model.Program, error)
	Create(ctx context.Context, req *dto.CreateProgramRequest, caller access.Principal) (*model.Program, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProgramRequest, caller access.Principal) (*model.Program, error)
	Delete(ctx context.Context, id uint, caller access.Principal) error

	ListTopics(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.ProgramTopic], error)
	GetTopic(ctx context.Context, id uint) (*model.ProgramTopic, error)
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest, caller access.Principal) (*model.ProgramTopic, error)
	UpdateTopic(ctx context.Context, id uint, req *dto.UpdateTopicRequest, caller access.Principal) (*model.ProgramTopic, error)
	DeleteTopic(ctx context.Context, id uint, caller access.Principal) error
}

type programService struct {
	base
}

// NewProgramService creates a ProgramService.
func NewProgramService(repo *repository.Repository, recorder audit.Recorder, logger *zap.Logger) ProgramService {
	return &programService{base: base{repo: repo, audit: recorder, logger: logger}}
}

// ────────────────────── programs ──────────────────────

func (s *programService) List(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.Program], error) {
	programs, total, err := s.repo.Program.ListWithTopics(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list programs failed")
	}
	return newPage(programs, total, q), nil
}

func (s *programService) Get(ctx context.Context, id uint) (*model.Program, error) {
	p, err := s.repo.Program.GetWithTopics(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrProgramNotFound, "get program failed", zap.Uint("id", id))
	}
	if p.Topics == nil {
		p.Topics = []model.ProgramTopic{}
	}
	return p, nil
}

func (s *programService) Create(ctx context.Context, req *dto.CreateProgramRequest, caller access.Principal) (*model.Program, error) {
	createdBy := caller.UserID
	p := &model.Program{
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		IsActive:     boolOr(req.IsActive, true),
		CreatedBy:    &createdBy,
		Topics:       []model.ProgramTopic{},
	}
	if err := s.repo.Program.Create(ctx, p); err != nil {
		return nil, s.fail(err, nil, "create program failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: programsTable, ID: p.ID},
		nil, audit.Snapshot{"name": p.Name}, audit.ActorFrom(caller))
	return p, nil
}

func (s *programService) Update(ctx context.Context, id uint, req *dto.UpdateProgramRequest, caller access.Principal) (*model.Program, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := audit.Snapshot{
		"name":          p.Name,
		"description":   p.Description,
		"duration_days": p.DurationDays,
		"is_active":     p.IsActive,
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.DurationDays != nil {
		p.DurationDays = *req.DurationDays
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Program.Update(ctx, p); err != nil {
		return nil, s.fail(err, nil, "update program failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: programsTable, ID: p.ID},
		before, audit.Snapshot{"name": p.Name}, audit.ActorFrom(caller))
	return p, nil
}

func (s *programService) Delete(ctx context.Context, id uint, caller access.Principal) error {
	p, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		return s.fail(err, ErrProgramNotFound, "get program failed", zap.Uint("id", id))
	}
	if err := s.repo.Program.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete program failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: programsTable, ID: id},
		audit.Snapshot{"name": p.Name}, nil, audit.ActorFrom(caller))
	return nil
}

// ────────────────────── topics ──────────────────────

func (s *programService) ListTopics(ctx context.Context, q *dto.ListQuery) (*dto.Page[model.ProgramTopic], error) {
	topics, total, err := s.repo.Topic.List(ctx, listParams(q))
	if err != nil {
		return nil, s.fail(err, nil, "list topics failed")
	}
	return newPage(topics, total, q), nil
}

func (s *programService) GetTopic(ctx context.Context, id uint) (*model.ProgramTopic, error) {
	t, err := s.repo.Topic.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, ErrTopicNotFound, "get topic failed", zap.Uint("id", id))
	}
	return t, nil
}

func (s *programService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest, caller access.Principal) (*model.ProgramTopic, error) {
	if err := s.mustExist(ctx, "program_id", req.ProgramID, s.repo.Program.Exists); err != nil {
		return nil, err
	}

	t := &model.ProgramTopic{
		ProgramID:        req.ProgramID,
		TopicName:        req.TopicName,
		TopicDescription: req.TopicDescription,
		TopicOrder:       req.TopicOrder,
		EstimatedHours:   req.EstimatedHours,
	}
	if err := s.repo.Topic.Create(ctx, t); err != nil {
		return nil, s.fail(err, nil, "create topic failed")
	}

	s.audit.Record(ctx, audit.ActionCreate, audit.Entity{Table: topicsTable, ID: t.ID},
		nil, topicSnapshot(t), audit.ActorFrom(caller))
	return t, nil
}

func (s *programService) UpdateTopic(ctx context.Context, id uint, req *dto.UpdateTopicRequest, caller access.Principal) (*model.ProgramTopic, error) {
	t, err := s.GetTopic(ctx, id)
	if err != nil {
		return nil, err
	}
	before := topicSnapshot(t)

	if req.ProgramID != nil && *req.ProgramID != t.ProgramID {
		if err := s.mustExist(ctx, "program_id", *req.ProgramID, s.repo.Program.Exists); err != nil {
			return nil, err
		}
		t.ProgramID = *req.ProgramID
	}
	if req.TopicName != nil {
		t.TopicName = *req.TopicName
	}
	if req.TopicDescription != nil {
		t.TopicDescription = req.TopicDescription
	}
	if req.TopicOrder != nil {
		t.TopicOrder = *req.TopicOrder
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = *req.EstimatedHours
	}

	if err := s.repo.Topic.Update(ctx, t); err != nil {
		return nil, s.fail(err, nil, "update topic failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionUpdate, audit.Entity{Table: topicsTable, ID: t.ID},
		before, topicSnapshot(t), audit.ActorFrom(caller))
	return t, nil
}

func (s *programService) DeleteTopic(ctx context.Context, id uint, caller access.Principal) error {
	t, err := s.GetTopic(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Topic.Delete(ctx, id); err != nil {
		return s.fail(err, nil, "delete topic failed", zap.Uint("id", id))
	}

	s.audit.Record(ctx, audit.ActionDelete, audit.Entity{Table: topicsTable, ID: id},
		topicSnapshot(t), nil, audit.ActorFrom(caller))
	return nil
}

func topicSnapshot(t *model.ProgramTopic) audit.Snapshot {
	return audit.Snapshot{
		"program_id":  t.ProgramID,
		"topic_name":  t.TopicName,
		"topic_order": t.TopicOrder,
	}
}
