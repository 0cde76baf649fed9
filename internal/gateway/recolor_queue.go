package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type colorSetter interface {
	SetEventColor(ctx context.Context, eventID, color string) error
}

// recolorJob is one pending calendar recolor.
type recolorJob struct {
	EventID  string
	Color    string
	Attempt  int
	Enqueued time.Time
}

// RecolorQueueConfig configures the recolor worker pool.
type RecolorQueueConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// RecolorQueue applies calendar recolors from background workers. The
// calendar API rate-limits color updates, so failed recolors are retried
// after a delay instead of being dropped on the first error.
type RecolorQueue struct {
	calendar colorSetter

	workers    int
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger

	jobs    chan recolorJob
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewRecolorQueue builds a queue that applies recolors through calendar.
func NewRecolorQueue(calendar colorSetter, cfg RecolorQueueConfig) *RecolorQueue {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 4
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &RecolorQueue{
		calendar:   calendar,
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
		jobs:       make(chan recolorJob, cfg.BufferSize),
	}
}

// Start begins worker consumption. Safe to call once.
func (q *RecolorQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	q.started = true
	q.logger.Sugar().Infow("recolor queue started", "workers", q.workers)
}

// Stop cancels workers and waits for them to exit. Recolors still in the
// buffer are abandoned; the next sync reissues them.
func (q *RecolorQueue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.mu.Unlock()
	q.wg.Wait()
	q.logger.Sugar().Infow("recolor queue stopped")
}

// Submit schedules one recolor. It never blocks on the calendar itself,
// only on a full buffer.
func (q *RecolorQueue) Submit(eventID, color string) error {
	q.mu.Lock()
	ctx := q.ctx
	started := q.started
	q.mu.Unlock()

	if !started {
		return fmt.Errorf("recolor queue not started")
	}

	job := recolorJob{EventID: eventID, Color: color, Enqueued: time.Now().UTC()}
	select {
	case <-ctx.Done():
		return fmt.Errorf("recolor queue stopped: %w", ctx.Err())
	case q.jobs <- job:
		return nil
	}
}

func (q *RecolorQueue) worker() {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			if err := q.calendar.SetEventColor(q.ctx, job.EventID, job.Color); err != nil {
				q.handleFailure(job, err)
			}
		}
	}
}

func (q *RecolorQueue) handleFailure(job recolorJob, err error) {
	job.Attempt++
	if job.Attempt > q.maxRetries {
		q.logger.Sugar().Errorw("recolor exceeded retries",
			"event_id", job.EventID, "color", job.Color, "error", err)
		return
	}
	q.logger.Sugar().Warnw("recolor failed, retrying",
		"event_id", job.EventID, "color", job.Color, "attempt", job.Attempt, "error", err)

	go func(j recolorJob) {
		timer := time.NewTimer(q.retryDelay)
		defer timer.Stop()
		select {
		case <-q.ctx.Done():
			return
		case <-timer.C:
			select {
			case <-q.ctx.Done():
			case q.jobs <- j:
			}
		}
	}(job)
}

// AsyncCalendar pairs a CalendarClient with a RecolorQueue: event listing
// stays synchronous while recolors are handed to the background workers.
type AsyncCalendar struct {
	*CalendarClient
	queue *RecolorQueue
}

// NewAsyncCalendar wraps client so its recolors go through queue.
func NewAsyncCalendar(client *CalendarClient, queue *RecolorQueue) *AsyncCalendar {
	return &AsyncCalendar{CalendarClient: client, queue: queue}
}

// SetEventColor schedules the recolor instead of applying it inline.
func (a *AsyncCalendar) SetEventColor(_ context.Context, eventID, color string) error {
	return a.queue.Submit(eventID, color)
}
