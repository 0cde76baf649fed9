package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type studentRepository interface {
	ListEntries(ctx context.Context) ([]models.StudentEntry, error)
	FindByName(ctx context.Context, name string) (*models.StudentEntry, error)
	ListByFolder(ctx context.Context, folderKey string) ([]models.StudentEntry, error)
	ListFolderKeys(ctx context.Context) ([]string, error)
}

type teacherRepository interface {
	ListActive(ctx context.Context) ([]models.Teacher, error)
}

// StudentService answers roster lookups for the dashboard.
type StudentService struct {
	students studentRepository
	teachers teacherRepository
	logger   *zap.Logger
}

// NewStudentService constructs the service.
func NewStudentService(students studentRepository, teachers teacherRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, teachers: teachers, logger: logger}
}

// Links returns the note and history URLs for a student by exact name.
func (s *StudentService) Links(ctx context.Context, name string) (*dto.StudentLinks, error) {
	entry, err := s.students.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found: "+name)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student")
	}
	return &dto.StudentLinks{NoteURL: entry.NoteURL, HistoryURL: entry.HistoryURL}, nil
}

// FoldersAndTeachers bundles the dropdown data the dashboard needs.
func (s *StudentService) FoldersAndTeachers(ctx context.Context) (*dto.FoldersAndTeachers, error) {
	folders, err := s.students.ListFolderKeys(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list folders")
	}
	teachers, err := s.teachers.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	result := &dto.FoldersAndTeachers{Folders: folders, Teachers: make([]string, 0, len(teachers))}
	for _, teacher := range teachers {
		result.Teachers = append(result.Teachers, teacher.Name)
	}
	return result, nil
}

// NamesByFolder returns the unique student names filed under a folder key.
func (s *StudentService) NamesByFolder(ctx context.Context, folderKey string) ([]string, error) {
	entries, err := s.students.ListByFolder(ctx, folderKey)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students by folder")
	}
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, duplicate := seen[entry.Name]; duplicate {
			continue
		}
		seen[entry.Name] = struct{}{}
		names = append(names, entry.Name)
	}
	return names, nil
}
