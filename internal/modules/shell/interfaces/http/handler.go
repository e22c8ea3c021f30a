package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unilab/labdash/internal/modules/shell/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// ShellService defines the sidebar and navbar operations
type ShellService interface {
	Navigation() []domain.NavEntry
	Search(query string) []domain.NavEntry
	Preferences(ctx context.Context) (domain.Preferences, error)
	UpdatePreferences(ctx context.Context, u domain.PreferencesUpdate) (domain.Preferences, error)
	AdjustFontScale(ctx context.Context, action domain.FontAction) (domain.Preferences, error)
}

type FontScaleRequest struct {
	Action domain.FontAction `json:"action" validate:"required,oneof=increase decrease reset"`
}

type ShellHandler struct {
	service ShellService
}

func NewShellHandler(service ShellService) *ShellHandler {
	return &ShellHandler{service: service}
}

func (h *ShellHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": h.service.Navigation()})
}

func (h *ShellHandler) Search(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": h.service.Search(r.URL.Query().Get("q"))})
}

func (h *ShellHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Preferences(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "no se pudieron leer las preferencias", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *ShellHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req domain.PreferencesUpdate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	p, err := h.service.UpdatePreferences(r.Context(), req)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "no se pudieron guardar las preferencias", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *ShellHandler) AdjustFontScale(w http.ResponseWriter, r *http.Request) {
	var req FontScaleRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	p, err := h.service.AdjustFontScale(r.Context(), req.Action)
	if errors.Is(err, domain.ErrUnknownFontAction) {
		utils.WriteError(w, http.StatusBadRequest, "accion de fuente desconocida", nil)
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "no se pudieron guardar las preferencias", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}
