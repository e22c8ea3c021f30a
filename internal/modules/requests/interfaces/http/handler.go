package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unilab/labdash/internal/modules/requests/application"
	"github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/filter"
	"github.com/unilab/labdash/internal/shared/utils"
)

// RequestService defines the solicitudes page operations
type RequestService interface {
	List(ctx context.Context, f application.ListFilter) ([]domain.SolicitudView, error)
	Get(ctx context.Context, id string) (*domain.SolicitudView, error)
	Approve(ctx context.Context, id string) (*domain.SolicitudView, error)
	Reject(ctx context.Context, id, motivo string) (*domain.SolicitudView, error)
	Complete(ctx context.Context, id string) (*domain.SolicitudView, error)
}

type RejectRequest struct {
	Motivo string `json:"motivo" validate:"required,notblank,max=500"`
}

type RequestHandler struct {
	service RequestService
}

func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) writeError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, domain.ErrSolicitudNotFound) {
		utils.WriteError(w, http.StatusNotFound, "solicitud no encontrada", nil)
		return
	}
	utils.WriteUpstreamError(w, message, err)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	desde, hasta, err := filter.ParseRange(q.Get("desde"), q.Get("hasta"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "rango de fechas invalido", err)
		return
	}

	items, err := h.service.List(r.Context(), application.ListFilter{
		Query:  q.Get("q"),
		Estado: q.Get("estado"),
		Tipo:   q.Get("tipo"),
		Desde:  desde,
		Hasta:  hasta,
	})
	if err != nil {
		h.writeError(w, "no se pudieron cargar las solicitudes", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "no se pudo cargar la solicitud", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "no se pudo aprobar la solicitud", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req RejectRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	item, err := h.service.Reject(r.Context(), r.PathValue("id"), req.Motivo)
	if err != nil {
		h.writeError(w, "no se pudo rechazar la solicitud", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Complete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, "no se pudo completar la solicitud", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}
