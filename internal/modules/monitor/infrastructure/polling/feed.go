package polling

import (
	"context"
	"time"

	"github.com/unilab/labdash/internal/modules/monitor/domain"
)

// Fetch reads the current snapshot of a collection.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Feed polls fetch every interval, starting immediately. Ticks are handled
// one after the other: a slow fetch delays the next tick rather than
// overlapping it.
type Feed[T any] struct {
	interval time.Duration
	timeout  time.Duration
	fetch    Fetch[T]
}

// NewFeed returns a polling feed. A zero timeout bounds each fetch by the interval.
func NewFeed[T any](interval, timeout time.Duration, fetch Fetch[T]) *Feed[T] {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	return &Feed[T]{interval: interval, timeout: timeout, fetch: fetch}
}

func (f *Feed[T]) Interval() time.Duration { return f.interval }

func (f *Feed[T]) Run(ctx context.Context, deliver domain.Deliver[T]) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.Poll(ctx, deliver)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Poll(ctx, deliver)
		}
	}
}

// Poll runs one fetch and delivers its outcome.
func (f *Feed[T]) Poll(ctx context.Context, deliver domain.Deliver[T]) {
	if ctx.Err() != nil {
		return
	}
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	records, err := f.fetch(fetchCtx)
	if ctx.Err() != nil {
		// shutting down, not a failed poll
		return
	}
	deliver(ctx, records, err)
}
