package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/unilab/labdash/internal/modules/agenda/domain"
	monitorDomain "github.com/unilab/labdash/internal/modules/monitor/domain"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
)

// Cache holds the last solicitudes snapshot delivered by a feed. A failed
// refresh keeps the previous snapshot.
type Cache struct {
	feed   monitorDomain.Feed[requestsDomain.Solicitud]
	load   func(ctx context.Context) ([]requestsDomain.Solicitud, error)
	logger *slog.Logger

	mu        sync.RWMutex
	items     []requestsDomain.Solicitud
	loaded    bool
	refreshed time.Time
}

// NewCache refreshes from feed while Run is active. load fills the cache on
// demand when a page is requested before the first delivery.
func NewCache(feed monitorDomain.Feed[requestsDomain.Solicitud], load func(ctx context.Context) ([]requestsDomain.Solicitud, error), logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{feed: feed, load: load, logger: logger.With("component", "agenda_cache")}
}

// Run blocks until ctx is done.
func (c *Cache) Run(ctx context.Context) {
	c.feed.Run(ctx, c.deliver)
}

func (c *Cache) deliver(_ context.Context, items []requestsDomain.Solicitud, err error) {
	if err != nil {
		c.logger.Warn("agenda refresh failed", "error", err)
		return
	}
	c.store(items)
}

func (c *Cache) store(items []requestsDomain.Solicitud) {
	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.refreshed = time.Now()
	c.mu.Unlock()
}

// Solicitudes returns the cached snapshot, loading it first if needed.
func (c *Cache) Solicitudes(ctx context.Context) ([]requestsDomain.Solicitud, error) {
	c.mu.RLock()
	items, loaded := c.items, c.loaded
	c.mu.RUnlock()
	if loaded {
		return items, nil
	}

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.store(items)
	return items, nil
}

// RefreshedAt is the time of the last successful refresh, zero before the first one.
func (c *Cache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshed
}

type AgendaService struct {
	cache *Cache
	now   func() time.Time
}

func NewAgendaService(cache *Cache) *AgendaService {
	return &AgendaService{cache: cache, now: time.Now}
}

// Month builds the calendar for mes ("YYYY-MM", empty for the current month).
func (s *AgendaService) Month(ctx context.Context, mes string) (domain.Month, error) {
	first, err := domain.ParseMonth(mes, s.now())
	if err != nil {
		return domain.Month{}, err
	}
	items, err := s.cache.Solicitudes(ctx)
	if err != nil {
		return domain.Month{}, err
	}
	return domain.BuildMonth(first, items), nil
}
