package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	fsApplication "github.com/unilab/labdash/internal/modules/filestorage/application"
	fsDomain "github.com/unilab/labdash/internal/modules/filestorage/domain"
	movementsDomain "github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/modules/reports/domain"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	suppliesDomain "github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/shared/filter"
)

const archiveFolder = "reportes"

// Archiver keeps exported files.
type Archiver interface {
	Archive(ctx context.Context, req fsApplication.ArchiveRequest) (*fsDomain.File, error)
}

// Sources are the collections a summary is built from.
type Sources struct {
	Solicitudes requestsDomain.Repository
	Insumos     suppliesDomain.Repository
	Movimientos movementsDomain.Repository
}

type ReportService struct {
	sources  Sources
	exporter domain.Exporter
	archiver Archiver
	logger   *slog.Logger
	now      func() time.Time
}

func NewReportService(sources Sources, exporter domain.Exporter, archiver Archiver, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		sources:  sources,
		exporter: exporter,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// Summary fetches the three collections concurrently and derives the
// counts, the monthly loans series and the most lent insumos.
func (s *ReportService) Summary(ctx context.Context) (*domain.Summary, error) {
	var (
		wg          sync.WaitGroup
		solicitudes []requestsDomain.Solicitud
		insumos     []suppliesDomain.Insumo
		movimientos []movementsDomain.Movimiento
		errs        [3]error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		solicitudes, errs[0] = s.sources.Solicitudes.List(ctx)
	}()
	go func() {
		defer wg.Done()
		insumos, errs[1] = s.sources.Insumos.List(ctx)
	}()
	go func() {
		defer wg.Done()
		movimientos, errs[2] = s.sources.Movimientos.List(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	return &domain.Summary{
		Insumos:      domain.CountInsumos(insumos),
		Solicitudes:  domain.CountSolicitudes(solicitudes),
		Movimientos:  domain.CountMovimientos(movimientos),
		Serie:        domain.MonthlySeries(movimientos, now, domain.SeriesMonths),
		TopPrestados: domain.TopLent(movimientos, domain.TopLimit),
		GeneradoEn:   now.UTC(),
	}, nil
}

// Export downloads the rendered report and archives it under reportes/.
func (s *ReportService) Export(ctx context.Context, req domain.ExportRequest) (*fsDomain.File, error) {
	fallback, err := req.Formato.ContentType()
	if err != nil {
		return nil, err
	}
	if _, _, err := filter.ParseRange(req.Desde, req.Hasta); err != nil {
		return nil, err
	}

	body, contentType, err := s.exporter.Export(ctx, req)
	if err != nil {
		return nil, err
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = fallback
	}

	file, err := s.archiver.Archive(ctx, fsApplication.ArchiveRequest{
		Folder:      archiveFolder,
		Filename:    req.Filename(),
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}
	s.logger.Info("report exported", "key", file.Key, "formato", req.Formato, "size", file.Size)
	return file, nil
}
