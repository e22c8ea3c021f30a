package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unilab/labdash/internal/modules/notification/domain"
)

// Store is the single source of truth for the notification list and its
// unread counter. It lives for the whole process and is shared by the
// monitors, the page actions and the panel handlers.
//
// unread equals the number of items with Read == false after every call.
type Store struct {
	mu     sync.Mutex
	items  []domain.Notification // newest first
	unread int

	presenter domain.Presenter
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewStore(presenter domain.Presenter) *Store {
	return &Store{
		presenter: presenter,
		now:       time.Now,
		newID:     newTimeOrderedID,
	}
}

func newTimeOrderedID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Add prepends an unread notification and presents it as a toast. A zero
// timestamp means now.
func (s *Store) Add(typ domain.NotificationType, title, message string, timestamp time.Time) domain.Notification {
	if timestamp.IsZero() {
		timestamp = s.now()
	}
	n := domain.Notification{
		ID:        s.newID(),
		Type:      typ.Normalize(),
		Title:     title,
		Message:   message,
		Timestamp: timestamp,
		Read:      false,
	}

	s.mu.Lock()
	s.items = append([]domain.Notification{n}, s.items...)
	s.unread++
	s.mu.Unlock()

	// outside the lock: presenting may block on the websocket hub
	if s.presenter != nil {
		s.presenter.Present(n)
	}
	return n
}

// MarkAsRead marks one unread notification as read. It reports whether
// anything changed; an unknown or already read id is a no-op.
func (s *Store) MarkAsRead(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Read {
			return false
		}
		s.items[i].Read = true
		if s.unread > 0 {
			s.unread--
		}
		return true
	}
	return false
}

func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
	s.unread = 0
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.unread = 0
}

// List returns a copy of the notifications, newest first.
func (s *Store) List() []domain.Notification {
	items, _ := s.Snapshot()
	return items
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// Snapshot returns the list and unread count read under the same lock.
func (s *Store) Snapshot() ([]domain.Notification, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out, s.unread
}
