package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type lessonStoreStub struct {
	records  []models.LessonRecord
	statuses []models.LessonStatus
	readErr  error

	setCalls  []string
	setErr    error
	setResult map[string]bool
}

func (s *lessonStoreStub) ReadSnapshot(ctx context.Context) ([]models.LessonRecord, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.records, nil
}

func (s *lessonStoreStub) ListStatuses(ctx context.Context) ([]models.LessonStatus, error) {
	return s.statuses, nil
}

func (s *lessonStoreStub) SetStatus(ctx context.Context, eventID, field string, value bool) error {
	s.setCalls = append(s.setCalls, eventID+"/"+field)
	if s.setErr != nil {
		return s.setErr
	}
	if s.setResult != nil {
		if _, known := s.setResult[eventID]; !known {
			return appErrors.ErrNotFound
		}
	}
	return nil
}

type memoryCacheRepo struct {
	values map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}
	return nil
}

func TestLessonServiceListReadsStore(t *testing.T) {
	store := &lessonStoreStub{records: []models.LessonRecord{{EventID: "e1", StudentNames: []string{"Taro Yamada"}}}}
	svc := NewLessonService(store, nil, nil)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "e1", records[0].EventID)
}

func TestLessonServiceListUsesCache(t *testing.T) {
	store := &lessonStoreStub{records: []models.LessonRecord{{EventID: "e1"}}}
	cacheRepo := newMemoryCacheRepo()
	cacheService := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewLessonService(store, cacheService, nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	// Second read must come from the cache even if the store breaks.
	store.readErr = errors.New("db down")
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "e1", records[0].EventID)
}

func TestLessonServiceSetStatusInvalidatesCache(t *testing.T) {
	store := &lessonStoreStub{records: []models.LessonRecord{{EventID: "e1"}}}
	cacheRepo := newMemoryCacheRepo()
	cacheService := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewLessonService(store, cacheService, nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cacheRepo.values)

	require.NoError(t, svc.SetStatus(context.Background(), "e1", models.StatusFieldPDFUploaded, true))
	assert.Empty(t, cacheRepo.values)
}

func TestLessonServiceSetStatusRejectsUnknownField(t *testing.T) {
	store := &lessonStoreStub{}
	svc := NewLessonService(store, nil, nil)

	err := svc.SetStatus(context.Background(), "e1", "paidInFull", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.setCalls, "no store call for an invalid field")
}

func TestLessonServiceSetStatusUnknownEvent(t *testing.T) {
	store := &lessonStoreStub{setResult: map[string]bool{}}
	svc := NewLessonService(store, nil, nil)

	err := svc.SetStatus(context.Background(), "missing", models.StatusFieldHistoryRecorded, true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLessonServiceExportCSV(t *testing.T) {
	store := &lessonStoreStub{records: []models.LessonRecord{{
		EventID:      "e1",
		EventName:    "Taro and Hanako Yamada",
		Start:        "10:00",
		End:          "10:50",
		FolderKey:    "001 Yamada",
		StudentNames: []string{"Taro Yamada", "Hanako Yamada"},
		PDFUploaded:  true,
	}}}
	svc := NewLessonService(store, nil, nil)

	payload, contentType, err := svc.Export(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	content := string(payload)
	assert.Contains(t, content, "eventID")
	assert.Contains(t, content, "Taro Yamada, Hanako Yamada")
	assert.Contains(t, content, "true")
}

func TestLessonServiceExportPDF(t *testing.T) {
	store := &lessonStoreStub{records: []models.LessonRecord{{EventID: "e1", StudentNames: []string{"Taro Yamada"}}}}
	svc := NewLessonService(store, nil, nil)

	payload, contentType, err := svc.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestLessonServiceExportUnknownFormat(t *testing.T) {
	svc := NewLessonService(&lessonStoreStub{}, nil, nil)

	_, _, err := svc.Export(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
