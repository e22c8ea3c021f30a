package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/unilab/labdash/internal/modules/reports/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

const exportPath = "/reportes/export"

// Exporter downloads rendered reports from the lab API.
type Exporter struct {
	client *labapi.Client
}

func NewExporter(client *labapi.Client) *Exporter {
	return &Exporter{client: client}
}

func (e *Exporter) Export(ctx context.Context, req domain.ExportRequest) ([]byte, string, error) {
	q := url.Values{}
	q.Set("formato", string(req.Formato))
	if req.Desde != "" {
		q.Set("desde", req.Desde)
	}
	if req.Hasta != "" {
		q.Set("hasta", req.Hasta)
	}
	body, contentType, err := e.client.Download(ctx, exportPath, q)
	if err != nil {
		return nil, "", fmt.Errorf("export %s: %w", req.Formato, err)
	}
	return body, contentType, nil
}
