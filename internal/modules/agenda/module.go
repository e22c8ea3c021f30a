package agenda

import (
	"context"
	"log/slog"
	"time"

	"github.com/unilab/labdash/internal/modules/agenda/application"
	agenda_http "github.com/unilab/labdash/internal/modules/agenda/interfaces/http"
	"github.com/unilab/labdash/internal/modules/monitor/infrastructure/polling"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
)

// Module represents the agenda page
type Module struct {
	cache   *application.Cache
	service *application.AgendaService
	handler *agenda_http.AgendaHandler
}

func NewModule(solicitudes requestsDomain.Repository, refresh, timeout time.Duration, logger *slog.Logger) *Module {
	feed := polling.NewFeed(refresh, timeout, solicitudes.List)
	cache := application.NewCache(feed, solicitudes.List, logger)
	service := application.NewAgendaService(cache)
	return &Module{
		cache:   cache,
		service: service,
		handler: agenda_http.NewAgendaHandler(service),
	}
}

// Run refreshes the solicitudes cache until ctx is done.
func (m *Module) Run(ctx context.Context) {
	m.cache.Run(ctx)
}

func (m *Module) Service() *application.AgendaService {
	return m.service
}

func (m *Module) HTTPHandler() *agenda_http.AgendaHandler {
	return m.handler
}
