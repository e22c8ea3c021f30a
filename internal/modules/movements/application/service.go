package application

import (
	"context"
	"time"

	"github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/shared/filter"
)

type ListFilter struct {
	Query string
	Tipo  string
	Desde time.Time
	Hasta time.Time
}

type MovementService struct {
	repo domain.Repository
}

func NewMovementService(repo domain.Repository) *MovementService {
	return &MovementService{repo: repo}
}

// List returns the matching movements, newest first.
func (s *MovementService) List(ctx context.Context, f ListFilter) ([]domain.Movimiento, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(items, predicate(f))
	domain.SortByFechaDesc(out)
	return out, nil
}

// Grouped returns the matching movements grouped by solicitud.
func (s *MovementService) Grouped(ctx context.Context, f ListFilter) ([]domain.Group, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return domain.GroupBySolicitud(items), nil
}

func predicate(f ListFilter) filter.Predicate[domain.Movimiento] {
	return filter.All(
		filter.Text(f.Query, func(m domain.Movimiento) []string {
			return []string{m.InsumoNombre, m.Responsable, m.Observaciones, m.SolicitudID.String()}
		}),
		filter.Equals(f.Tipo, func(m domain.Movimiento) string { return string(m.Tipo.Normalize()) }),
		filter.DateRange(f.Desde, f.Hasta, domain.Movimiento.Span),
	)
}
