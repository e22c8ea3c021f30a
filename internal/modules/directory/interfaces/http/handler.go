package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/unilab/labdash/internal/modules/directory/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// DirectoryService defines the operations of one directory page
type DirectoryService[T domain.Person, I any] interface {
	List(ctx context.Context, query string) ([]T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id string, in I) (*T, error)
	Delete(ctx context.Context, id string) error
}

// DirectoryHandler serves /api/docentes or /api/alumnos. label is the
// singular noun used in inline error messages.
type DirectoryHandler[T domain.Person, I any] struct {
	service DirectoryService[T, I]
	label   string
}

func NewDirectoryHandler[T domain.Person, I any](service DirectoryService[T, I], label string) *DirectoryHandler[T, I] {
	return &DirectoryHandler[T, I]{service: service, label: label}
}

func (h *DirectoryHandler[T, I]) writeError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, domain.ErrPersonNotFound) {
		utils.WriteError(w, http.StatusNotFound, h.label+" no encontrado", nil)
		return
	}
	utils.WriteUpstreamError(w, message, err)
}

func (h *DirectoryHandler[T, I]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, "no se pudo cargar la lista de "+h.label+"s", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func (h *DirectoryHandler[T, I]) Create(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := utils.DecodeAndValidate(r, &in); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	item, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, "no se pudo crear el "+h.label, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *DirectoryHandler[T, I]) Update(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := utils.DecodeAndValidate(r, &in); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}
	item, err := h.service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, "no se pudo actualizar el "+h.label, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *DirectoryHandler[T, I]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, "no se pudo eliminar el "+h.label, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
