package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/export"
)

const (
	lessonCacheKey     = "lessons:today"
	lessonCachePattern = "lessons:*"
)

type lessonStore interface {
	ReadSnapshot(ctx context.Context) ([]models.LessonRecord, error)
	ListStatuses(ctx context.Context) ([]models.LessonStatus, error)
	SetStatus(ctx context.Context, eventID, field string, value bool) error
}

// LessonService serves the cached lesson snapshot and its operator-status
// surface to the dashboard.
type LessonService struct {
	store  lessonStore
	cache  *CacheService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewLessonService constructs the service.
func NewLessonService(store lessonStore, cache *CacheService, logger *zap.Logger) *LessonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{
		store:  store,
		cache:  cache,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// List returns the cached snapshot rows, via the read-side cache when
// enabled.
func (s *LessonService) List(ctx context.Context) ([]models.LessonRecord, error) {
	var cached []models.LessonRecord
	if hit, err := s.cache.Get(ctx, lessonCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	records, err := s.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read lesson snapshot")
	}
	_ = s.cache.Set(ctx, lessonCacheKey, records, 0)
	return records, nil
}

// Statuses returns the operator-progress slice of every cached lesson.
func (s *LessonService) Statuses(ctx context.Context) ([]models.LessonStatus, error) {
	statuses, err := s.store.ListStatuses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lesson statuses")
	}
	return statuses, nil
}

// SetStatus flips one operator flag for a cached lesson. Unknown fields
// are rejected and an absent event ID surfaces as not found; no partial
// mutation happens in either case.
func (s *LessonService) SetStatus(ctx context.Context, eventID, field string, value bool) error {
	switch field {
	case models.StatusFieldPDFUploaded, models.StatusFieldHistoryRecorded:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown status field: "+field)
	}
	if err := s.store.SetStatus(ctx, eventID, field, value); err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrNotFound.Code {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found in lesson cache: "+eventID)
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update lesson status")
	}
	_ = s.cache.Invalidate(ctx, lessonCachePattern)
	return nil
}

// Export renders the current snapshot as a downloadable CSV or PDF table.
func (s *LessonService) Export(ctx context.Context, format string) ([]byte, string, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	dataset := snapshotDataset(records)

	switch strings.ToLower(format) {
	case "", "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Today's Lessons")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

func snapshotDataset(records []models.LessonRecord) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, map[string]string{
			"eventID":         record.EventID,
			"eventName":       record.EventName,
			"Start":           record.Start,
			"End":             record.End,
			"folderName":      record.FolderKey,
			"studentNames":    strings.Join(record.StudentNames, ", "),
			"pdfUpload":       strconv.FormatBool(record.PDFUploaded),
			"lessonHistory":   strconv.FormatBool(record.HistoryRecorded),
			"evaluationReady": strconv.FormatBool(record.EvaluationReady),
			"evaluationDue":   strconv.FormatBool(record.EvaluationDue),
			"isOnline":        strconv.FormatBool(record.IsOnline),
			"teacher":         record.Teacher,
		})
	}
	return export.Dataset{Headers: models.SnapshotHeaders, Rows: rows}
}
