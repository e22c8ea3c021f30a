package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Repository reads solicitudes and forwards estado changes to the lab API.
type Repository struct {
	client *labapi.Client
}

var _ domain.Repository = (*Repository)(nil)

func NewRepository(client *labapi.Client) *Repository {
	return &Repository{client: client}
}

func solicitudPath(id string) string {
	return "/solicitudes/" + url.PathEscape(id)
}

func (r *Repository) List(ctx context.Context) ([]domain.Solicitud, error) {
	var out []domain.Solicitud
	if err := r.client.GetList(ctx, "/solicitudes", nil, &out); err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	for i := range out {
		out[i] = out[i].Normalize()
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Solicitud, error) {
	var out domain.Solicitud
	if err := r.client.Get(ctx, solicitudPath(id), nil, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrSolicitudNotFound
		}
		return nil, fmt.Errorf("get solicitud %s: %w", id, err)
	}
	out = out.Normalize()
	return &out, nil
}

func (r *Repository) UpdateEstado(ctx context.Context, id string, update domain.EstadoUpdate) (*domain.Solicitud, error) {
	var out domain.Solicitud
	if err := r.client.Send(ctx, http.MethodPatch, solicitudPath(id), update, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrSolicitudNotFound
		}
		return nil, fmt.Errorf("update estado of solicitud %s: %w", id, err)
	}
	out = out.Normalize()
	return &out, nil
}
