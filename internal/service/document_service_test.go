package service

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type storageStub struct {
	saved map[string][]byte
	files map[string][]string
}

func newStorageStub() *storageStub {
	return &storageStub{saved: make(map[string][]byte), files: make(map[string][]string)}
}

func (s *storageStub) Save(filename string, data []byte) (string, error) {
	s.saved[filename] = data
	return filename, nil
}

func (s *storageStub) Open(filename string) (*os.File, error) {
	return nil, os.ErrNotExist
}

func (s *storageStub) List(dir string) ([]string, error) {
	return s.files[dir], nil
}

func (s *storageStub) Delete(filename string) error {
	if _, ok := s.saved[filename]; !ok {
		return os.ErrNotExist
	}
	delete(s.saved, filename)
	return nil
}

type evaluationReaderStub struct {
	evaluations []models.Evaluation
}

func (s *evaluationReaderStub) ListByStudent(ctx context.Context, studentName string) ([]models.Evaluation, error) {
	return s.evaluations, nil
}

func validNoteRequest() dto.LessonNoteRequest {
	return dto.LessonNoteRequest{
		EventID:     "e1",
		FolderKey:   "001 Yamada",
		StudentName: "Taro Yamada",
		Date:        "2026-03-02",
		Teacher:     "Kacey",
		Homework:    "Unit 4 review",
	}
}

func TestGenerateLessonNoteStoresSequencedFile(t *testing.T) {
	storage := newStorageStub()
	storage.files["001 Yamada/Lesson Notes"] = []string{
		"001 Taro Yamada's Lesson Note 01032026.pdf",
		"002 Taro Yamada's Lesson Note 02032026.pdf",
	}
	statuses := &statusWriterStub{}
	svc := NewDocumentService(storage, &evaluationReaderStub{}, statuses, nil, nil)

	result, err := svc.GenerateLessonNote(context.Background(), validNoteRequest())
	require.NoError(t, err)
	assert.Equal(t, "003 Taro Yamada's Lesson Note 02032026.pdf", result.Filename)
	assert.Contains(t, result.Path, "001 Yamada/Lesson Notes/")
	assert.Equal(t, []string{"e1/" + models.StatusFieldPDFUploaded}, statuses.calls)

	payload := storage.saved[result.Path]
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestGenerateLessonNoteFirstInFolder(t *testing.T) {
	svc := NewDocumentService(newStorageStub(), &evaluationReaderStub{}, &statusWriterStub{}, nil, nil)

	result, err := svc.GenerateLessonNote(context.Background(), validNoteRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Filename, "001 "))
}

func TestGenerateLessonNoteValidation(t *testing.T) {
	svc := NewDocumentService(newStorageStub(), &evaluationReaderStub{}, &statusWriterStub{}, nil, nil)

	req := validNoteRequest()
	req.StudentName = ""
	_, err := svc.GenerateLessonNote(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGenerateLessonNoteRejectsBadDate(t *testing.T) {
	svc := NewDocumentService(newStorageStub(), &evaluationReaderStub{}, &statusWriterStub{}, nil, nil)

	req := validNoteRequest()
	req.Date = "yesterday"
	_, err := svc.GenerateLessonNote(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGenerateEvaluationRendersScores(t *testing.T) {
	storage := newStorageStub()
	evaluations := &evaluationReaderStub{evaluations: []models.Evaluation{
		{StudentName: "Taro Yamada", Number: 1, DateLabel: "2026-01-15", Grammar: "B+", Speaking: "A"},
		{StudentName: "Taro Yamada", Number: 2, DateLabel: "2026-02-15", Grammar: "A-", Speaking: "A"},
	}}
	svc := NewDocumentService(storage, evaluations, &statusWriterStub{}, nil, nil)

	result, err := svc.GenerateEvaluation(context.Background(), dto.EvaluationPDFRequest{
		StudentName: "Taro Yamada",
		Level:       "Intermediate",
		Textbook:    "Passport 2",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Filename, "Taro Yamada Evaluation")
	assert.Contains(t, result.Path, "Taro Yamada/Evaluation/")
}

func TestDocumentServiceDelete(t *testing.T) {
	storage := newStorageStub()
	storage.saved["001 Yamada/Lesson Notes/001 note.pdf"] = []byte("%PDF-1.4")
	svc := NewDocumentService(storage, &evaluationReaderStub{}, &statusWriterStub{}, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "001 Yamada/Lesson Notes/001 note.pdf"))

	err := svc.Delete(context.Background(), "001 Yamada/Lesson Notes/001 note.pdf")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
