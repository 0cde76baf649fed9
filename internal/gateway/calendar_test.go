package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	"github.com/khaCey/Teachers-Calendar/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*CalendarClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewCalendarClient(config.CalendarConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, nil)
	return client, server
}

func TestListEvents(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sources/lessons/events", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, start.Format(time.RFC3339), r.URL.Query().Get("start"))

		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"data": []models.RawEvent{
				{ID: "e1", Title: "Taro Yamada", Start: start.Add(10 * time.Hour), End: start.Add(11 * time.Hour)},
			},
		})
	})

	events, err := client.ListEvents(context.Background(), "lessons", start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "lessons", events[0].SourceID, "source ID is filled in when the bridge omits it")
}

func TestListEventsSourceMissing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.ListEvents(context.Background(), "ghost", time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestListEventsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListEvents(context.Background(), "lessons", time.Now(), time.Now())
	require.Error(t, err)
}

func TestSetEventColor(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/events/e1/color", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SetEventColor(context.Background(), "e1", "green"))
	assert.Equal(t, map[string]string{"color": "green"}, gotBody)
}

func TestSetEventColorFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := client.SetEventColor(context.Background(), "e1", "red")
	require.Error(t, err)
}
