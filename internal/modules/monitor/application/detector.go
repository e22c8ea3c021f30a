package application

import (
	"sort"
	"sync"
)

// Detector finds records whose id was not in the previous snapshot.
type Detector[T any] struct {
	mu     sync.Mutex
	idOf   func(T) string
	seen    map[string]struct{}
	primed  bool
	skipped int
}

func NewDetector[T any](idOf func(T) string) *Detector[T] {
	return &Detector[T]{idOf: idOf, seen: make(map[string]struct{})}
}

// Observe diffs records against the seen set and then replaces the set with
// the ids of records. The first call only primes the set and returns nil.
// New records come back in input order, once per id. Records without an id
// are never tracked nor reported.
func (d *Detector[T]) Observe(records []T) []T {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := make(map[string]struct{}, len(records))
	var fresh []T
	d.skipped = 0
	for _, r := range records {
		id := d.idOf(r)
		if id == "" {
			d.skipped++
			continue
		}
		if _, dup := current[id]; dup {
			continue
		}
		current[id] = struct{}{}
		if _, ok := d.seen[id]; !ok && d.primed {
			fresh = append(fresh, r)
		}
	}
	d.seen = current
	d.primed = true
	return fresh
}

// Skipped is the number of id-less records in the last observation.
func (d *Detector[T]) Skipped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.skipped
}

func (d *Detector[T]) Primed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.primed
}

// Seen returns the current id set, sorted.
func (d *Detector[T]) Seen() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.seen))
	for id := range d.seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
