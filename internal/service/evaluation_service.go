package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type evaluationRepository interface {
	ListByStudent(ctx context.Context, studentName string) ([]models.Evaluation, error)
}

// EvaluationService serves a student's evaluation history.
type EvaluationService struct {
	repo   evaluationRepository
	logger *zap.Logger
}

// NewEvaluationService constructs the service.
func NewEvaluationService(repo evaluationRepository, logger *zap.Logger) *EvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{repo: repo, logger: logger}
}

// ListByStudent returns the student's evaluations sorted by number.
func (s *EvaluationService) ListByStudent(ctx context.Context, studentName string) ([]models.Evaluation, error) {
	evaluations, err := s.repo.ListByStudent(ctx, studentName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list evaluations")
	}
	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].Number < evaluations[j].Number
	})
	return evaluations, nil
}
