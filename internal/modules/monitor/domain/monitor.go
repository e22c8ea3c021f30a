package domain

import (
	"context"
	"time"
)

// Deliver receives one snapshot of a monitored collection, or the error that
// prevented reading it.
type Deliver[T any] func(ctx context.Context, records []T, err error)

// Feed produces snapshots until ctx is done. Calls to deliver never overlap.
// Polling is one implementation; a push subscription could be another.
type Feed[T any] interface {
	Run(ctx context.Context, deliver Deliver[T])
}

// Status is what GET /api/monitors reports for one monitor.
type Status struct {
	Name      string     `json:"name"`
	Interval  string     `json:"interval"`
	Primed    bool       `json:"primed"`
	Seen      int        `json:"seen"`
	Polls     int        `json:"polls"`
	Failures  int        `json:"failures"`
	LastPoll  *time.Time `json:"last_poll"`
	LastError string     `json:"last_error,omitempty"`
}

// Monitor is a running change detector.
type Monitor interface {
	Name() string
	Run(ctx context.Context)
	Status() Status
}
