package upstream

import (
	"context"
	"fmt"

	"github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

type Repository struct {
	client *labapi.Client
}

func NewRepository(client *labapi.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) List(ctx context.Context) ([]domain.Movimiento, error) {
	var out []domain.Movimiento
	if err := r.client.GetList(ctx, "/movimientos", nil, &out); err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	for i := range out {
		out[i].Tipo = out[i].Tipo.Normalize()
	}
	return out, nil
}
