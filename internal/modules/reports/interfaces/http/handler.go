package http

import (
	"context"
	"errors"
	"net/http"

	fsDomain "github.com/unilab/labdash/internal/modules/filestorage/domain"
	"github.com/unilab/labdash/internal/modules/reports/domain"
	"github.com/unilab/labdash/internal/shared/filter"
	"github.com/unilab/labdash/internal/shared/utils"
)

// ReportService defines the reports page operations
type ReportService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	Export(ctx context.Context, req domain.ExportRequest) (*fsDomain.File, error)
}

type ReportHandler struct {
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		utils.WriteUpstreamError(w, "no se pudo generar el resumen", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req domain.ExportRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}

	file, err := h.service.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, filter.ErrInvalidRange) || errors.Is(err, domain.ErrInvalidFormato) {
			utils.WriteError(w, http.StatusBadRequest, "parametros de exportacion invalidos", err)
			return
		}
		utils.WriteUpstreamError(w, "no se pudo exportar el reporte", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, file)
}
