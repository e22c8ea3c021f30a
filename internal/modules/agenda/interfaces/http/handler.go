package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unilab/labdash/internal/modules/agenda/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// AgendaService defines the agenda page operations
type AgendaService interface {
	Month(ctx context.Context, mes string) (domain.Month, error)
}

type AgendaHandler struct {
	service AgendaService
}

func NewAgendaHandler(service AgendaService) *AgendaHandler {
	return &AgendaHandler{service: service}
}

// Month handles GET /api/agenda?mes=YYYY-MM
func (h *AgendaHandler) Month(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Month(r.Context(), r.URL.Query().Get("mes"))
	if errors.Is(err, domain.ErrInvalidMonth) {
		utils.WriteError(w, http.StatusBadRequest, "mes invalido, use YYYY-MM", nil)
		return
	}
	if err != nil {
		utils.WriteUpstreamError(w, "no se pudo cargar la agenda", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, m)
}
