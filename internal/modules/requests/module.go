package requests

import (
	"log/slog"

	"github.com/unilab/labdash/internal/modules/requests/application"
	"github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/modules/requests/infrastructure/upstream"
	requests_http "github.com/unilab/labdash/internal/modules/requests/interfaces/http"
	"github.com/unilab/labdash/internal/shared/infrastructure/email"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Module represents the Solicitudes page module
type Module struct {
	repository *upstream.Repository
	service    *application.RequestService
	handler    *requests_http.RequestHandler
}

func NewModule(client *labapi.Client, mailer email.Sender, logger *slog.Logger) *Module {
	repository := upstream.NewRepository(client)
	service := application.NewRequestService(repository, mailer, logger)

	return &Module{
		repository: repository,
		service:    service,
		handler:    requests_http.NewRequestHandler(service),
	}
}

// Repository exposes the solicitud reader to the monitor, agenda and reports.
func (m *Module) Repository() domain.Repository {
	return m.repository
}

func (m *Module) Service() *application.RequestService {
	return m.service
}

func (m *Module) HTTPHandler() *requests_http.RequestHandler {
	return m.handler
}
