package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unilab/labdash/internal/modules/supplies/application"
	"github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// SupplyService defines the supplies page operations
type SupplyService interface {
	List(ctx context.Context, f application.ListFilter) ([]domain.InsumoView, error)
	Summary(ctx context.Context) (*domain.Summary, error)
	Get(ctx context.Context, id string) (*domain.InsumoView, error)
	Create(ctx context.Context, in domain.InsumoInput) (*domain.InsumoView, error)
	Update(ctx context.Context, id string, in domain.InsumoInput) (*domain.InsumoView, error)
	Delete(ctx context.Context, id string) error
	Maintenance(ctx context.Context, insumoID string) ([]domain.Mantenimiento, error)
	LogMaintenance(ctx context.Context, insumoID string, in domain.MantenimientoInput) (*domain.Mantenimiento, *domain.InsumoView, error)
}

type SupplyHandler struct {
	service SupplyService
}

func NewSupplyHandler(service SupplyService) *SupplyHandler {
	return &SupplyHandler{service: service}
}

func (h *SupplyHandler) writeError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, domain.ErrInsumoNotFound):
		utils.WriteError(w, http.StatusNotFound, "insumo no encontrado", nil)
	case errors.Is(err, domain.ErrInvalidFecha):
		utils.WriteError(w, http.StatusBadRequest, "fecha invalida", err)
	default:
		utils.WriteUpstreamError(w, message, err)
	}
}

func (h *SupplyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.service.List(r.Context(), application.ListFilter{
		Query:     q.Get("q"),
		Categoria: q.Get("categoria"),
		Nivel:     q.Get("nivel"),
	})
	if err != nil {
		h.writeError(w, "no se pudieron cargar los insumos", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (h *SupplyHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.writeError(w, "no se pudo cargar el resumen", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

func (h *SupplyHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "no se pudo cargar el insumo", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *SupplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsumoInput
	if err := utils.DecodeAndValidate(r, &in); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	item, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, "no se pudo crear el insumo", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *SupplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in domain.InsumoInput
	if err := utils.DecodeAndValidate(r, &in); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	item, err := h.service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, "no se pudo actualizar el insumo", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *SupplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, "no se pudo eliminar el insumo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SupplyHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Maintenance(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "no se pudo cargar el historial de mantenimiento", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (h *SupplyHandler) LogMaintenance(w http.ResponseWriter, r *http.Request) {
	var in domain.MantenimientoInput
	if err := utils.DecodeAndValidate(r, &in); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	m, insumo, err := h.service.LogMaintenance(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, "no se pudo registrar el mantenimiento", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"mantenimiento": m,
		"insumo":        insumo,
	})
}
