package supplies

import (
	"log/slog"

	"github.com/unilab/labdash/internal/modules/supplies/application"
	"github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/modules/supplies/infrastructure/upstream"
	supplies_http "github.com/unilab/labdash/internal/modules/supplies/interfaces/http"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Module represents the Supplies page module
type Module struct {
	repository *upstream.Repository
	service    *application.SupplyService
	handler    *supplies_http.SupplyHandler
}

func NewModule(client *labapi.Client, alerter application.Alerter, logger *slog.Logger) *Module {
	repository := upstream.NewRepository(client)
	service := application.NewSupplyService(repository, alerter, logger)

	return &Module{
		repository: repository,
		service:    service,
		handler:    supplies_http.NewSupplyHandler(service),
	}
}

// Repository exposes the insumo reader to the low-stock monitor and reports.
func (m *Module) Repository() domain.Repository {
	return m.repository
}

func (m *Module) Service() *application.SupplyService {
	return m.service
}

func (m *Module) HTTPHandler() *supplies_http.SupplyHandler {
	return m.handler
}
