package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	"github.com/khaCey/Teachers-Calendar/internal/service"
)

// syncCalendarStub only has events on 2026-03-02; any other day is empty.
type syncCalendarStub struct{}

func (s *syncCalendarStub) ListEvents(_ context.Context, sourceID string, dayStart, dayEnd time.Time) ([]models.RawEvent, error) {
	target := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !dayStart.Equal(target) {
		return nil, nil
	}
	return []models.RawEvent{{
		ID:       "e1",
		SourceID: sourceID,
		Title:    "Taro Yamada",
		Start:    target.Add(10 * time.Hour),
		End:      target.Add(11 * time.Hour),
		ColorTag: "1",
	}}, nil
}

func (s *syncCalendarStub) SetEventColor(_ context.Context, _, _ string) error { return nil }

type syncRosterStub struct{}

func (s *syncRosterStub) ListEntries(_ context.Context) ([]models.StudentEntry, error) {
	return []models.StudentEntry{{Name: "Taro Yamada", FolderKey: "001 Yamada"}}, nil
}

type syncStoreStub struct {
	replaced []models.LessonRecord
}

func (s *syncStoreStub) ListStatuses(_ context.Context) ([]models.LessonStatus, error) {
	return nil, nil
}

func (s *syncStoreStub) ReplaceSnapshot(_ context.Context, _ []string, records []models.LessonRecord) error {
	s.replaced = records
	return nil
}

func newSyncTestRouter(t *testing.T) (*gin.Engine, *syncStoreStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := &syncStoreStub{}
	svc := service.NewSyncService(&syncCalendarStub{}, &syncRosterStub{}, store, []string{"lessons"}, time.UTC, nil, nil, nil)
	r := gin.New()
	r.POST("/sync", NewSyncHandler(svc).Run)
	return r, store
}

func TestSyncHandlerHonorsQueryDate(t *testing.T) {
	r, store := newSyncTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sync?date=02/03/2026", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.replaced, 1)
	require.Contains(t, w.Body.String(), "Taro Yamada")
}

func TestSyncHandlerHonorsBodyDate(t *testing.T) {
	r, store := newSyncTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sync", strings.NewReader(`{"date":"2026-03-02"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.replaced, 1)
}

func TestSyncHandlerBodyDateWinsOverQuery(t *testing.T) {
	r, store := newSyncTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sync?date=01/01/2020", strings.NewReader(`{"date":"02/03/2026"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.replaced, 1)
}
