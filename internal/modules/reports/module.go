package reports

import (
	"log/slog"

	fsApplication "github.com/unilab/labdash/internal/modules/filestorage/application"
	"github.com/unilab/labdash/internal/modules/reports/application"
	"github.com/unilab/labdash/internal/modules/reports/infrastructure/upstream"
	reports_http "github.com/unilab/labdash/internal/modules/reports/interfaces/http"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Module represents the reports page
type Module struct {
	service *application.ReportService
	handler *reports_http.ReportHandler
}

func NewModule(client *labapi.Client, sources application.Sources, archive *fsApplication.ArchiveService, logger *slog.Logger) *Module {
	service := application.NewReportService(sources, upstream.NewExporter(client), archive, logger)
	return &Module{
		service: service,
		handler: reports_http.NewReportHandler(service),
	}
}

func (m *Module) Service() *application.ReportService {
	return m.service
}

func (m *Module) HTTPHandler() *reports_http.ReportHandler {
	return m.handler
}
