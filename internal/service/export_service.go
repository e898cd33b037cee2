package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
)

// ErrExportGenerateFail the workbook could not be written.
var ErrExportGenerateFail = errors.New("failed to generate the excel file")

const progressSheet = "Progress"

var progressHeader = []string{
	"ID", "Trainee", "Email", "Batch", "Topic", "Status", "Completion %", "Last Updated", "Notes",
}

// ExportService file exports.
//
// The progress report is one sheet of every record the caller may see,
// honouring the same filters and ordering as the list endpoint. The
// result is returned as a buffer; the handler sets the download headers.
type ExportService interface {
	ExportProgress(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) ExportProgress(ctx context.Context, q *dto.ListQuery, caller access.Principal) (*bytes.Buffer, string, error) {
	p := listParams(q)
	p.Offset, p.Limit = 0, 0
	records, err := s.repo.Progress.ListForReport(ctx, p, progressScope(caller)...)
	if err != nil {
		s.logger.Error("load progress report failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(progressSheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(progressSheet, "A", "A", 8)
	f.SetColWidth(progressSheet, "B", "E", 22)
	f.SetColWidth(progressSheet, "F", "H", 16)
	f.SetColWidth(progressSheet, "I", "I", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range progressHeader {
		f.SetCellValue(progressSheet, cell(i, 1), h)
	}
	f.SetCellStyle(progressSheet, cell(0, 1), cell(len(progressHeader)-1, 1), headerStyle)
	f.SetPanes(progressSheet, &excelize.Panes{Freeze: true, Split: false, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i := range records {
		if err := f.SetSheetRow(progressSheet, cell(0, i+2), progressRow(&records[i])); err != nil {
			s.logger.Error("write progress row failed", zap.Uint("id", records[i].ID), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("progress_report_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

func progressRow(pr *model.ProgressRecord) *[]interface{} {
	trainee, email := "", ""
	if pr.Trainee != nil {
		trainee, email = pr.Trainee.Username, pr.Trainee.Email
	}
	batch := ""
	if pr.Batch != nil {
		batch = pr.Batch.Name
	}
	topic := ""
	if pr.Topic != nil {
		topic = pr.Topic.TopicName
	}
	notes := ""
	if pr.Notes != nil {
		notes = *pr.Notes
	}
	row := []interface{}{
		pr.ID,
		trainee,
		email,
		batch,
		topic,
		string(pr.Status),
		pr.CompletionPercentage,
		pr.LastUpdated.Format("2006-01-02 15:04"),
		notes,
	}
	return &row
}

// cell converts a zero-based column and one-based row into "A1" form.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
