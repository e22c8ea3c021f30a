package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/unilab/labdash/internal/modules/monitor/domain"
)

// Handler turns a successful snapshot into notifications. It returns how
// many records it reported.
type Handler[T any] interface {
	Handle(ctx context.Context, records []T) (int, error)
	// State reports whether the handler has a baseline and how many ids it tracks.
	State() (primed bool, tracked int)
}

// Metrics receives one call per delivery.
type Metrics interface {
	Poll(monitor string, err error)
	NewRecords(monitor string, n int)
}

// Watcher connects a feed to a handler and keeps the monitor status.
// A failed delivery leaves the handler untouched; the feed retries on its
// next tick.
type Watcher[T any] struct {
	name     string
	interval time.Duration
	feed     domain.Feed[T]
	handler  Handler[T]
	metrics  Metrics
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	polls     int
	failures  int
	lastPoll  time.Time
	lastError string
}

func NewWatcher[T any](name string, interval time.Duration, feed domain.Feed[T], handler Handler[T], metrics Metrics, logger *slog.Logger) *Watcher[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher[T]{
		name:     name,
		interval: interval,
		feed:     feed,
		handler:  handler,
		metrics:  metrics,
		logger:   logger.With("monitor", name),
		now:      time.Now,
	}
}

func (w *Watcher[T]) Name() string { return w.name }

// Run blocks until ctx is done.
func (w *Watcher[T]) Run(ctx context.Context) {
	w.logger.Info("monitor started", "interval", w.interval.String())
	w.feed.Run(ctx, w.deliver)
	w.logger.Info("monitor stopped")
}

func (w *Watcher[T]) deliver(ctx context.Context, records []T, err error) {
	if err == nil {
		var n int
		n, err = w.handler.Handle(ctx, records)
		if err == nil && n > 0 {
			w.logger.Info("new records", "count", n)
			if w.metrics != nil {
				w.metrics.NewRecords(w.name, n)
			}
		}
	}

	w.mu.Lock()
	w.polls++
	w.lastPoll = w.now()
	if err != nil {
		w.failures++
		w.lastError = err.Error()
	} else {
		w.lastError = ""
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("poll failed", "error", err)
	}
	if w.metrics != nil {
		w.metrics.Poll(w.name, err)
	}
}

func (w *Watcher[T]) Status() domain.Status {
	primed, tracked := w.handler.State()

	w.mu.Lock()
	defer w.mu.Unlock()
	s := domain.Status{
		Name:      w.name,
		Interval:  w.interval.String(),
		Primed:    primed,
		Seen:      tracked,
		Polls:     w.polls,
		Failures:  w.failures,
		LastError: w.lastError,
	}
	if !w.lastPoll.IsZero() {
		t := w.lastPoll
		s.LastPoll = &t
	}
	return s
}

// DiffHandler reports records the detector has not seen before.
type DiffHandler[T any] struct {
	detector *Detector[T]
	onNew    func(ctx context.Context, record T)
	logger   *slog.Logger
}

func NewDiffHandler[T any](idOf func(T) string, onNew func(ctx context.Context, record T), logger *slog.Logger) *DiffHandler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiffHandler[T]{detector: NewDetector(idOf), onNew: onNew, logger: logger}
}

func (h *DiffHandler[T]) Handle(ctx context.Context, records []T) (int, error) {
	fresh := h.detector.Observe(records)
	if n := h.detector.Skipped(); n > 0 {
		h.logger.WarnContext(ctx, "records without id ignored", "count", n)
	}
	for _, r := range fresh {
		h.onNew(ctx, r)
	}
	return len(fresh), nil
}

func (h *DiffHandler[T]) State() (bool, int) {
	return h.detector.Primed(), len(h.detector.Seen())
}

// Detector exposes the seen set, mostly for tests.
func (h *DiffHandler[T]) Detector() *Detector[T] {
	return h.detector
}
