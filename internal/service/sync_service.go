package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
)

type calendarSource interface {
	ListEvents(ctx context.Context, sourceID string, dayStart, dayEnd time.Time) ([]models.RawEvent, error)
	SetEventColor(ctx context.Context, eventID, color string) error
}

type rosterReader interface {
	ListEntries(ctx context.Context) ([]models.StudentEntry, error)
}

type snapshotStore interface {
	ListStatuses(ctx context.Context) ([]models.LessonStatus, error)
	ReplaceSnapshot(ctx context.Context, headers []string, records []models.LessonRecord) error
}

// SyncService orchestrates the lesson cache sync: fetch the day's events
// from every configured calendar source, derive per-student lessons,
// merge operator progress from the previous snapshot and replace the
// cached snapshot wholesale.
type SyncService struct {
	calendar calendarSource
	roster   rosterReader
	store    snapshotStore
	sources  []string
	tz       *time.Location

	classifier *EventClassifier
	resolver   func([]models.StudentEntry) *NameResolver
	expander   *OccurrenceExpander
	grouper    *LessonGrouper
	merger     *StatusMerger

	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger

	// One sync at a time; the cron trigger and the HTTP trigger share
	// this service instance.
	mu sync.Mutex
}

// NewSyncService constructs the sync orchestrator.
func NewSyncService(calendar calendarSource, roster rosterReader, store snapshotStore, sources []string, tz *time.Location, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *SyncService {
	if tz == nil {
		tz = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		calendar:   calendar,
		roster:     roster,
		store:      store,
		sources:    sources,
		tz:         tz,
		classifier: NewEventClassifier(),
		resolver:   NewNameResolver,
		expander:   NewOccurrenceExpander(tz),
		grouper:    NewLessonGrouper(),
		merger:     NewStatusMerger(),
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Run executes one full sync for the given date override ("DD/MM/YYYY" or
// "YYYY-MM-DD"; empty means today) and returns the persisted records. A
// failed run leaves the previous snapshot untouched.
func (s *SyncService) Run(ctx context.Context, dateOverride string) ([]models.LessonRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	began := time.Now()
	records, err := s.run(ctx, dateOverride)
	if s.metrics != nil {
		s.metrics.ObserveSyncRun(err == nil, len(records), time.Since(began))
	}
	return records, err
}

func (s *SyncService) run(ctx context.Context, dateOverride string) ([]models.LessonRecord, error) {
	if len(s.sources) == 0 {
		return nil, appErrors.Clone(appErrors.ErrConfiguration, "no calendar sources configured")
	}

	// Previous statuses. An unreadable snapshot (e.g. the first run ever)
	// means no prior records, never a failed sync.
	statuses, err := s.store.ListStatuses(ctx)
	if err != nil {
		s.logger.Warn("no previous statuses available", zap.Error(err))
		statuses = nil
	}

	dayStart, err := s.targetDate(dateOverride)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Every configured source is mandatory: abort before any write when
	// one cannot be fetched.
	var events []models.RawEvent
	for _, sourceID := range s.sources {
		fetched, err := s.calendar.ListEvents(ctx, sourceID, dayStart, dayEnd)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
				fmt.Sprintf("calendar source %q unavailable", sourceID))
		}
		events = append(events, fetched...)
	}

	entries, err := s.roster.ListEntries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "student roster unavailable")
	}
	resolver := s.resolver(entries)

	var occurrences []models.Occurrence
	var effects []ColorEffect
	for _, event := range events {
		cls, eventEffects := s.classifier.Classify(event)
		if !cls.Include {
			continue
		}
		effects = append(effects, eventEffects...)
		names := resolver.Resolve(event.Title)
		occurrences = append(occurrences, s.expander.Expand(event, cls, names)...)
	}

	records := s.grouper.Group(occurrences)
	records = s.merger.Merge(records, statuses)

	if err := s.store.ReplaceSnapshot(ctx, models.SnapshotHeaders, records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist lesson snapshot")
	}

	// Recolors are applied only after the snapshot is safely persisted,
	// and their failure never surfaces.
	for _, effect := range effects {
		if err := s.calendar.SetEventColor(ctx, effect.EventID, effect.Color); err != nil {
			s.logger.Warn("event recolor failed",
				zap.String("event_id", effect.EventID),
				zap.String("color", effect.Color),
				zap.Error(err))
		}
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, lessonCachePattern)
	}

	s.logger.Info("lesson sync completed",
		zap.Time("day", dayStart),
		zap.Int("events", len(events)),
		zap.Int("occurrences", len(occurrences)),
		zap.Int("lessons", len(records)))
	return records, nil
}

// targetDate resolves the sync day: an explicit override or today,
// normalised to midnight in the configured zone.
func (s *SyncService) targetDate(override string) (time.Time, error) {
	if override == "" {
		now := time.Now().In(s.tz)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.tz), nil
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if parsed, err := time.ParseInLocation(layout, override, s.tz); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected DD/MM/YYYY or YYYY-MM-DD")
}
