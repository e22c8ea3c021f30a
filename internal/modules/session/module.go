package session

import (
	"log/slog"

	"github.com/unilab/labdash/internal/modules/session/application"
	session_http "github.com/unilab/labdash/internal/modules/session/interfaces/http"
)

// Module represents the operator session module
type Module struct {
	service *application.SessionService
	handler *session_http.SessionHandler
}

func NewModule(cfg application.Config, logger *slog.Logger) *Module {
	service := application.NewSessionService(cfg, logger)
	return &Module{
		service: service,
		handler: session_http.NewSessionHandler(service),
	}
}

func (m *Module) Service() *application.SessionService {
	return m.service
}

func (m *Module) HTTPHandler() *session_http.SessionHandler {
	return m.handler
}
