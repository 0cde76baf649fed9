package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type historyRepository interface {
	Append(ctx context.Context, entry *models.HistoryEntry) error
	ListByFolder(ctx context.Context, folderKey string) ([]models.HistoryEntry, error)
}

type lessonStatusWriter interface {
	SetStatus(ctx context.Context, eventID, field string, value bool) error
}

// HistoryService appends lesson-history rows and flips the recorded flag
// on the matching cached lesson.
type HistoryService struct {
	repo      historyRepository
	statuses  lessonStatusWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHistoryService constructs the service.
func NewHistoryService(repo historyRepository, statuses lessonStatusWriter, validate *validator.Validate, logger *zap.Logger) *HistoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{repo: repo, statuses: statuses, validator: validate, logger: logger}
}

// Record appends the history row, then marks the lesson. The status flip
// happens after the append so a failed append leaves the cache untouched.
func (s *HistoryService) Record(ctx context.Context, req dto.HistoryEntryRequest) (*models.HistoryEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid history entry")
	}

	entry := &models.HistoryEntry{
		ID:              uuid.NewString(),
		FolderKey:       req.FolderKey,
		LessonDate:      req.Date,
		Teacher:         req.Teacher,
		WarmUpTopic:     req.WarmUpTopic,
		UnitPages:       req.UnitPages,
		Homework:        req.Homework,
		Comments:        req.Comments,
		StudentRequests: req.StudentRequests,
		Advice:          req.Advice,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to append history entry")
	}

	if err := s.statuses.SetStatus(ctx, req.EventID, models.StatusFieldHistoryRecorded, true); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByFolder returns the recorded history rows for one student folder.
func (s *HistoryService) ListByFolder(ctx context.Context, folderKey string) ([]models.HistoryEntry, error) {
	entries, err := s.repo.ListByFolder(ctx, folderKey)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list history entries")
	}
	return entries, nil
}
