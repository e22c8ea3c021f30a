package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/unilab/labdash/internal/gateway/middleware"
	"github.com/unilab/labdash/internal/modules/session/application"
	"github.com/unilab/labdash/internal/modules/session/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// SessionService defines the operations the handler needs
type SessionService interface {
	Login(ctx context.Context, req application.LoginRequest) (*application.LoginResponse, error)
}

type SessionHandler struct {
	service SessionService
}

func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.WriteError(w, http.StatusUnauthorized, "usuario o contraseña incorrectos", nil)
		case errors.Is(err, domain.ErrLoginDisabled):
			utils.WriteError(w, http.StatusServiceUnavailable, "inicio de sesion deshabilitado", nil)
		default:
			log.Printf("[SessionHandler] login error: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "no se pudo iniciar sesion", nil)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, username, ok := middleware.OperatorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "operator not authenticated", nil)
		return
	}
	role, _ := r.Context().Value(middleware.ContextKeyRole).(string)

	utils.WriteJSON(w, http.StatusOK, domain.Operator{ID: id, Usuario: username, Role: role})
}
