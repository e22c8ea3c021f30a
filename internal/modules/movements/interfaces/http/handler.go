package http

import (
	"context"
	"net/http"

	"github.com/unilab/labdash/internal/modules/movements/application"
	"github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/shared/filter"
	"github.com/unilab/labdash/internal/shared/utils"
)

// MovementService defines the inventory movements page operations
type MovementService interface {
	List(ctx context.Context, f application.ListFilter) ([]domain.Movimiento, error)
	Grouped(ctx context.Context, f application.ListFilter) ([]domain.Group, error)
}

type MovementHandler struct {
	service MovementService
}

func NewMovementHandler(service MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

func parseFilter(r *http.Request) (application.ListFilter, error) {
	q := r.URL.Query()
	desde, hasta, err := filter.ParseRange(q.Get("desde"), q.Get("hasta"))
	if err != nil {
		return application.ListFilter{}, err
	}
	return application.ListFilter{Query: q.Get("q"), Tipo: q.Get("tipo"), Desde: desde, Hasta: hasta}, nil
}

func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "rango de fechas invalido", err)
		return
	}
	items, err := h.service.List(r.Context(), f)
	if err != nil {
		utils.WriteUpstreamError(w, "no se pudieron cargar los movimientos", err)
		return
	}
	if items == nil {
		items = []domain.Movimiento{}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (h *MovementHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "rango de fechas invalido", err)
		return
	}
	groups, err := h.service.Grouped(r.Context(), f)
	if err != nil {
		utils.WriteUpstreamError(w, "no se pudieron cargar los movimientos", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": groups})
}
