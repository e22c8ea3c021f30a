package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/shared/filter"
	"github.com/unilab/labdash/internal/shared/types"
)

// Alerter raises the low-stock alert for an insumo at most once while it
// stays low. The low-stock monitor implements it.
type Alerter interface {
	AlertOnce(ctx context.Context, item domain.Insumo) (bool, error)
}

type ListFilter struct {
	Query     string
	Categoria string
	Nivel     string
}

type SupplyService struct {
	repo    domain.Repository
	alerter Alerter
	logger  *slog.Logger
}

func NewSupplyService(repo domain.Repository, alerter Alerter, logger *slog.Logger) *SupplyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SupplyService{repo: repo, alerter: alerter, logger: logger}
}

// List returns the insumos matching every filter, ordered by name.
func (s *SupplyService) List(ctx context.Context, f ListFilter) ([]domain.InsumoView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.InsumoView, 0, len(items))
	for _, i := range items {
		views = append(views, domain.NewView(i))
	}

	keep := filter.All(
		filter.Text(f.Query, func(v domain.InsumoView) []string {
			return []string{v.Nombre, v.Categoria, v.Ubicacion}
		}),
		filter.Equals(f.Categoria, func(v domain.InsumoView) string { return v.Categoria }),
		filter.Equals(f.Nivel, func(v domain.InsumoView) string { return string(v.Nivel) }),
	)
	out := filter.Apply(views, keep)
	sort.SliceStable(out, func(a, b int) bool {
		return filter.Fold(out[a].Nombre) < filter.Fold(out[b].Nombre)
	})
	return out, nil
}

func (s *SupplyService) Summary(ctx context.Context) (*domain.Summary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(items)
	return &summary, nil
}

func (s *SupplyService) Get(ctx context.Context, id string) (*domain.InsumoView, error) {
	i, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := domain.NewView(*i)
	return &v, nil
}

func (s *SupplyService) Create(ctx context.Context, in domain.InsumoInput) (*domain.InsumoView, error) {
	i, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "insumo created", "id", i.ID.String(), "nombre", i.Nombre)
	v := domain.NewView(*i)
	return &v, nil
}

func (s *SupplyService) Update(ctx context.Context, id string, in domain.InsumoInput) (*domain.InsumoView, error) {
	i, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	v := domain.NewView(*i)
	return &v, nil
}

func (s *SupplyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "insumo deleted", "id", id)
	return nil
}

// Maintenance lists the maintenance log of an insumo, most recent first.
func (s *SupplyService) Maintenance(ctx context.Context, insumoID string) ([]domain.Mantenimiento, error) {
	items, err := s.repo.ListMaintenance(ctx, insumoID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].FechaInicio.After(items[b].FechaInicio.Time)
	})
	return items, nil
}

// LogMaintenance records a maintenance action and returns the refreshed
// insumo. When the action leaves no stock available the low-stock alert is
// raised through the alerter, which skips insumos already alerted.
func (s *SupplyService) LogMaintenance(ctx context.Context, insumoID string, in domain.MantenimientoInput) (*domain.Mantenimiento, *domain.InsumoView, error) {
	if _, ok := types.ParseDate(in.FechaInicio); !ok {
		return nil, nil, fmt.Errorf("fecha_inicio %q: %w", in.FechaInicio, domain.ErrInvalidFecha)
	}
	if in.FechaFin != "" {
		if _, ok := types.ParseDate(in.FechaFin); !ok {
			return nil, nil, fmt.Errorf("fecha_fin %q: %w", in.FechaFin, domain.ErrInvalidFecha)
		}
	}
	in.InsumoID = types.ID(insumoID)

	m, err := s.repo.CreateMaintenance(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	insumo, err := s.repo.Get(ctx, insumoID)
	if err != nil {
		// the maintenance is recorded; the page reloads the insumo itself
		s.logger.WarnContext(ctx, "reload insumo after maintenance failed", "id", insumoID, "error", err)
		return m, nil, nil
	}

	v := domain.NewView(*insumo)
	if v.StockDisponible == 0 && s.alerter != nil {
		if _, err := s.alerter.AlertOnce(ctx, *insumo); err != nil {
			s.logger.WarnContext(ctx, "low stock alert after maintenance failed", "id", insumoID, "error", err)
		}
	}
	return m, &v, nil
}
