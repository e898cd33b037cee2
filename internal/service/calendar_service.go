package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

const calendarProductID = "-//training-tracker//batch calendar//EN"

// CalendarService renders batches as iCalendar files.
type CalendarService interface {
	// BatchCalendar returns the .ics body and a suggested filename. The batch
	// span is one all-day event; a batch without end date lasts one day.
	BatchCalendar(ctx context.Context, batchID uint) (string, string, error)
}

type calendarService struct {
	repo    *repository.Repository
	logger  *zap.Logger
	baseURL string
	now     func() time.Time
}

// NewCalendarService creates a CalendarService. baseURL is used to build
// globally unique event ids.
func NewCalendarService(repo *repository.Repository, baseURL string, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger, baseURL: baseURL, now: time.Now}
}

func (s *calendarService) BatchCalendar(ctx context.Context, batchID uint) (string, string, error) {
	b, trainers, err := s.repo.Batch.GetForCalendar(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrBatchNotFound
		}
		s.logger.Error("load batch calendar failed", zap.Uint("batch_id", batchID), zap.Error(err))
		return "", "", err
	}
	if b.StartDate == nil {
		return "", "", ErrBatchNoStartDate
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	host := strings.TrimPrefix(strings.TrimPrefix(s.baseURL, "https://"), "http://")
	event := cal.AddEvent(fmt.Sprintf("batch-%d@%s", b.ID, host))
	event.SetDtStampTime(s.now().UTC())
	event.SetSummary(batchSummary(b))
	event.SetDescription(batchDescription(b, trainers))

	start := time.Time(*b.StartDate)
	end := start
	if b.EndDate != nil {
		end = time.Time(*b.EndDate)
	}
	event.SetAllDayStartAt(start)
	// DTEND is exclusive for all-day events.
	event.SetAllDayEndAt(end.AddDate(0, 0, 1))

	return cal.Serialize(), fmt.Sprintf("batch_%d.ics", b.ID), nil
}

func batchSummary(b *model.Batch) string {
	if b.Program == nil {
		return b.Name
	}
	return fmt.Sprintf("%s (%s)", b.Name, b.Program.Name)
}

func batchDescription(b *model.Batch, trainers []model.BatchTrainer) string {
	names := make([]string, 0, len(trainers))
	for _, t := range trainers {
		if t.Trainer == nil {
			continue
		}
		name := t.Trainer.Username
		if t.IsLead {
			name += " (lead)"
		}
		names = append(names, name)
	}
	desc := "Status: " + string(b.Status)
	if len(names) > 0 {
		desc += "\nTrainers: " + strings.Join(names, ", ")
	}
	return desc
}
