package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Repository reads and writes insumos and mantenimientos through the lab API.
type Repository struct {
	client *labapi.Client
}

var _ domain.Repository = (*Repository)(nil)

func NewRepository(client *labapi.Client) *Repository {
	return &Repository{client: client}
}

func insumoPath(id string) string {
	return "/insumos/" + url.PathEscape(id)
}

func (r *Repository) List(ctx context.Context) ([]domain.Insumo, error) {
	var out []domain.Insumo
	if err := r.client.GetList(ctx, "/insumos", nil, &out); err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Insumo, error) {
	var out domain.Insumo
	if err := r.client.Get(ctx, insumoPath(id), nil, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrInsumoNotFound
		}
		return nil, fmt.Errorf("get insumo %s: %w", id, err)
	}
	return &out, nil
}

func (r *Repository) Create(ctx context.Context, in domain.InsumoInput) (*domain.Insumo, error) {
	var out domain.Insumo
	if err := r.client.Send(ctx, http.MethodPost, "/insumos", in, &out); err != nil {
		return nil, fmt.Errorf("create insumo: %w", err)
	}
	return &out, nil
}

func (r *Repository) Update(ctx context.Context, id string, in domain.InsumoInput) (*domain.Insumo, error) {
	var out domain.Insumo
	if err := r.client.Send(ctx, http.MethodPut, insumoPath(id), in, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrInsumoNotFound
		}
		return nil, fmt.Errorf("update insumo %s: %w", id, err)
	}
	return &out, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.client.Send(ctx, http.MethodDelete, insumoPath(id), nil, nil); err != nil {
		if labapi.IsNotFound(err) {
			return domain.ErrInsumoNotFound
		}
		return fmt.Errorf("delete insumo %s: %w", id, err)
	}
	return nil
}

func (r *Repository) ListMaintenance(ctx context.Context, insumoID string) ([]domain.Mantenimiento, error) {
	var out []domain.Mantenimiento
	if err := r.client.GetList(ctx, insumoPath(insumoID)+"/mantenimientos", nil, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrInsumoNotFound
		}
		return nil, fmt.Errorf("list mantenimientos of %s: %w", insumoID, err)
	}
	return out, nil
}

func (r *Repository) CreateMaintenance(ctx context.Context, in domain.MantenimientoInput) (*domain.Mantenimiento, error) {
	var out domain.Mantenimiento
	if err := r.client.Send(ctx, http.MethodPost, "/mantenimientos", in, &out); err != nil {
		return nil, fmt.Errorf("create mantenimiento: %w", err)
	}
	return &out, nil
}
