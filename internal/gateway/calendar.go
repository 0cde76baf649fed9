package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	"github.com/khaCey/Teachers-Calendar/pkg/config"
)

// CalendarClient talks to the calendar bridge service over JSON/HTTP. The
// bridge owns the actual calendar protocol; this client only lists a
// day's events per source and requests event recolors.
type CalendarClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewCalendarClient constructs the client from calendar configuration.
func NewCalendarClient(cfg config.CalendarConfig, logger *zap.Logger) *CalendarClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CalendarClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type eventListEnvelope struct {
	Data []models.RawEvent `json:"data"`
}

// ListEvents returns the raw events of one source within [dayStart, dayEnd).
func (c *CalendarClient) ListEvents(ctx context.Context, sourceID string, dayStart, dayEnd time.Time) ([]models.RawEvent, error) {
	endpoint := fmt.Sprintf("%s/sources/%s/events?start=%s&end=%s",
		c.baseURL,
		url.PathEscape(sourceID),
		url.QueryEscape(dayStart.Format(time.RFC3339)),
		url.QueryEscape(dayEnd.Format(time.RFC3339)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list events for source %s: %w", sourceID, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("calendar source not found: %s", sourceID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list events for source %s: status %d", sourceID, resp.StatusCode)
	}

	var envelope eventListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode events for source %s: %w", sourceID, err)
	}
	events := envelope.Data
	for i := range events {
		if events[i].SourceID == "" {
			events[i].SourceID = sourceID
		}
	}
	return events, nil
}

// SetEventColor requests a recolor of one event. Callers treat this as
// best-effort.
func (c *CalendarClient) SetEventColor(ctx context.Context, eventID, color string) error {
	payload, err := json.Marshal(map[string]string{"color": color})
	if err != nil {
		return fmt.Errorf("encode recolor payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/events/%s/color", c.baseURL, url.PathEscape(eventID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build recolor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("recolor event %s: %w", eventID, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("recolor event %s: status %d", eventID, resp.StatusCode)
	}
	return nil
}

func (c *CalendarClient) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
