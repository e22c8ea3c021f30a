package movements

import (
	"github.com/unilab/labdash/internal/modules/movements/application"
	"github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/modules/movements/infrastructure/upstream"
	movements_http "github.com/unilab/labdash/internal/modules/movements/interfaces/http"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Module represents the inventory movements page
type Module struct {
	repository *upstream.Repository
	service    *application.MovementService
	handler    *movements_http.MovementHandler
}

func NewModule(client *labapi.Client) *Module {
	repository := upstream.NewRepository(client)
	service := application.NewMovementService(repository)
	return &Module{
		repository: repository,
		service:    service,
		handler:    movements_http.NewMovementHandler(service),
	}
}

// Repository exposes the movement reader to the reports module.
func (m *Module) Repository() domain.Repository {
	return m.repository
}

func (m *Module) Service() *application.MovementService {
	return m.service
}

func (m *Module) HTTPHandler() *movements_http.MovementHandler {
	return m.handler
}
