// Package filter composes the pure list predicates used by the dashboard pages.
// Predicates always combine with AND.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/unilab/labdash/internal/shared/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// All keeps items satisfying every predicate. Nil predicates are skipped so
// callers can pass optional filters unconditionally.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return func(item T) bool {
		for _, p := range active {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items matching pred, keeping their order. The input is never modified.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Fold lowercases s and strips diacritics so "Química" matches "quimica".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Text matches when the folded query is a substring of any of the fields.
// An empty query yields a nil predicate.
func Text[T any](query string, fields func(T) []string) Predicate[T] {
	q := Fold(query)
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(Fold(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches a status-like field case-insensitively. Empty want yields nil.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if strings.TrimSpace(want) == "" {
		return nil
	}
	return func(item T) bool {
		return strings.EqualFold(strings.TrimSpace(field(item)), strings.TrimSpace(want))
	}
}

// DateRange matches items whose [start, end] interval overlaps [from, to].
// Zero bounds are open; a zero item end is treated as equal to its start.
func DateRange[T any](from, to time.Time, span func(T) (time.Time, time.Time)) Predicate[T] {
	if from.IsZero() && to.IsZero() {
		return nil
	}
	return func(item T) bool {
		start, end := span(item)
		if end.IsZero() {
			end = start
		}
		if start.IsZero() {
			return false
		}
		if !from.IsZero() && end.Before(from) {
			return false
		}
		if !to.IsZero() && start.After(to) {
			return false
		}
		return true
	}
}

var ErrInvalidRange = errors.New("invalid date range")

// ParseRange parses the desde/hasta query values. Either may be empty. A
// date-only hasta covers the whole day.
func ParseRange(desde, hasta string) (time.Time, time.Time, error) {
	var from, to time.Time
	if strings.TrimSpace(desde) != "" {
		d, ok := types.ParseDate(desde)
		if !ok {
			return from, to, fmt.Errorf("desde %q: %w", desde, ErrInvalidRange)
		}
		from = d.Time
	}
	if h := strings.TrimSpace(hasta); h != "" {
		d, ok := types.ParseDate(h)
		if !ok {
			return from, to, fmt.Errorf("hasta %q: %w", hasta, ErrInvalidRange)
		}
		to = d.Time
		if len(h) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("hasta before desde: %w", ErrInvalidRange)
	}
	return from, to, nil
}
