package shell

import (
	"fmt"
	"log/slog"

	prefsDomain "github.com/unilab/labdash/internal/modules/preferences/domain"
	"github.com/unilab/labdash/internal/modules/shell/application"
	"github.com/unilab/labdash/internal/modules/shell/infrastructure/navindex"
	shell_http "github.com/unilab/labdash/internal/modules/shell/interfaces/http"
)

// Module represents the sidebar and navbar chrome
type Module struct {
	service *application.ShellService
	handler *shell_http.ShellHandler
}

func NewModule(prefs prefsDomain.Store, logger *slog.Logger) (*Module, error) {
	index, err := navindex.Load()
	if err != nil {
		return nil, fmt.Errorf("shell module: %w", err)
	}
	service := application.NewShellService(index, prefs, logger)
	return &Module{
		service: service,
		handler: shell_http.NewShellHandler(service),
	}, nil
}

func (m *Module) Service() *application.ShellService {
	return m.service
}

func (m *Module) HTTPHandler() *shell_http.ShellHandler {
	return m.handler
}
