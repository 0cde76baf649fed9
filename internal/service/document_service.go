package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/export"
)

type documentStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	List(dir string) ([]string, error)
	Delete(filename string) error
}

type evaluationReader interface {
	ListByStudent(ctx context.Context, studentName string) ([]models.Evaluation, error)
}

// notePrefixPattern matches the 3-digit sequence prefix of stored lesson
// note files.
var notePrefixPattern = regexp.MustCompile(`^(\d{3})`)

const noteDateLayout = "02012006"

// DocumentService renders lesson-note and evaluation PDFs into document
// storage and keeps the lesson cache's PDF flag in step.
type DocumentService struct {
	storage     documentStorage
	evaluations evaluationReader
	statuses    lessonStatusWriter
	exporter    *export.DocumentExporter
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewDocumentService constructs the service.
func NewDocumentService(storage documentStorage, evaluations evaluationReader, statuses lessonStatusWriter, validate *validator.Validate, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		storage:     storage,
		evaluations: evaluations,
		statuses:    statuses,
		exporter:    export.NewDocumentExporter(),
		validator:   validate,
		logger:      logger,
	}
}

// GenerateLessonNote renders the note PDF, stores it under the student
// folder with the next 3-digit sequence number and a ddMMyyyy date
// suffix, and marks the lesson's PDF flag.
func (s *DocumentService) GenerateLessonNote(ctx context.Context, req dto.LessonNoteRequest) (*dto.DocumentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson note request")
	}

	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}

	dir := path.Join(req.FolderKey, "Lesson Notes")
	sequence, err := s.nextNoteNumber(dir)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to number lesson note")
	}

	payload, err := s.exporter.RenderLessonNote(export.LessonNoteDocument{
		StudentName:     req.StudentName,
		Date:            req.Date,
		Teacher:         req.Teacher,
		WarmUpTopic:     req.WarmUpTopic,
		UnitPages:       req.UnitPages,
		Homework:        req.Homework,
		Comments:        req.Comments,
		StudentRequests: req.StudentRequests,
		Advice:          req.Advice,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render lesson note")
	}

	filename := fmt.Sprintf("%s %s's Lesson Note %s.pdf", sequence, req.StudentName, date.Format(noteDateLayout))
	stored, err := s.storage.Save(path.Join(dir, filename), payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store lesson note")
	}

	if err := s.statuses.SetStatus(ctx, req.EventID, models.StatusFieldPDFUploaded, true); err != nil {
		return nil, err
	}
	return &dto.DocumentResult{Filename: filename, Path: stored}, nil
}

// GenerateEvaluation renders the student's evaluation history into a PDF
// stored under the student's evaluation folder.
func (s *DocumentService) GenerateEvaluation(ctx context.Context, req dto.EvaluationPDFRequest) (*dto.DocumentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid evaluation request")
	}

	evaluations, err := s.evaluations.ListByStudent(ctx, req.StudentName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load evaluations")
	}

	scores := make([]export.EvaluationScore, 0, len(evaluations))
	for _, eval := range evaluations {
		scores = append(scores, export.EvaluationScore{
			Date:       eval.DateLabel,
			Grammar:    eval.Grammar,
			Vocabulary: eval.Vocabulary,
			Speaking:   eval.Speaking,
			Listening:  eval.Listening,
			Reading:    eval.Reading,
			Writing:    eval.Writing,
			Fluency:    eval.Fluency,
			SelfStudy:  eval.SelfStudy,
		})
	}

	payload, err := s.exporter.RenderEvaluation(export.EvaluationDocument{
		StudentName: req.StudentName,
		Level:       req.Level,
		Textbook:    req.Textbook,
		Scores:      scores,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render evaluation")
	}

	filename := fmt.Sprintf("%s Evaluation %s.pdf", req.StudentName, time.Now().Format("2006-01-02"))
	stored, err := s.storage.Save(path.Join(req.StudentName, "Evaluation", filename), payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store evaluation")
	}
	return &dto.DocumentResult{Filename: filename, Path: stored}, nil
}

// Open returns a stored document for download.
func (s *DocumentService) Open(ctx context.Context, relPath string) (*os.File, error) {
	file, err := s.storage.Open(relPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found: "+relPath)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open document")
	}
	return file, nil
}

// Delete removes a stored document.
func (s *DocumentService) Delete(ctx context.Context, relPath string) error {
	if err := s.storage.Delete(relPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found: "+relPath)
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete document")
	}
	s.logger.Info("document deleted", zap.String("path", relPath))
	return nil
}

// nextNoteNumber scans the stored notes for the highest 3-digit prefix
// and returns the next one, zero padded.
func (s *DocumentService) nextNoteNumber(dir string) (string, error) {
	names, err := s.storage.List(dir)
	if err != nil {
		return "", err
	}
	max := 0
	for _, name := range names {
		if match := notePrefixPattern.FindStringSubmatch(name); match != nil {
			if n, err := strconv.Atoi(match[1]); err == nil && n > max {
				max = n
			}
		}
	}
	return fmt.Sprintf("%03d", max+1), nil
}

func parseDocumentDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD or DD/MM/YYYY")
}
