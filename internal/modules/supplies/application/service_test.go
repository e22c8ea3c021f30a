package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/supplies/domain"
	"github.com/unilab/labdash/internal/shared/types"
)

type repoMock struct {
	ListFn              func(ctx context.Context) ([]domain.Insumo, error)
	GetFn               func(ctx context.Context, id string) (*domain.Insumo, error)
	CreateFn            func(ctx context.Context, in domain.InsumoInput) (*domain.Insumo, error)
	UpdateFn            func(ctx context.Context, id string, in domain.InsumoInput) (*domain.Insumo, error)
	DeleteFn            func(ctx context.Context, id string) error
	ListMaintenanceFn   func(ctx context.Context, insumoID string) ([]domain.Mantenimiento, error)
	CreateMaintenanceFn func(ctx context.Context, in domain.MantenimientoInput) (*domain.Mantenimiento, error)
}

func (m *repoMock) List(ctx context.Context) ([]domain.Insumo, error) { return m.ListFn(ctx) }
func (m *repoMock) Get(ctx context.Context, id string) (*domain.Insumo, error) {
	return m.GetFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, in domain.InsumoInput) (*domain.Insumo, error) {
	return m.CreateFn(ctx, in)
}
func (m *repoMock) Update(ctx context.Context, id string, in domain.InsumoInput) (*domain.Insumo, error) {
	return m.UpdateFn(ctx, id, in)
}
func (m *repoMock) Delete(ctx context.Context, id string) error { return m.DeleteFn(ctx, id) }
func (m *repoMock) ListMaintenance(ctx context.Context, insumoID string) ([]domain.Mantenimiento, error) {
	return m.ListMaintenanceFn(ctx, insumoID)
}
func (m *repoMock) CreateMaintenance(ctx context.Context, in domain.MantenimientoInput) (*domain.Mantenimiento, error) {
	return m.CreateMaintenanceFn(ctx, in)
}

type alerterMock struct {
	alerted []domain.Insumo
	err     error
}

func (a *alerterMock) AlertOnce(_ context.Context, item domain.Insumo) (bool, error) {
	a.alerted = append(a.alerted, item)
	return a.err == nil, a.err
}

func sampleInsumos() []domain.Insumo {
	return []domain.Insumo{
		{ID: "1", Nombre: "Probeta", Categoria: "Vidrio", StockActual: 10, StockMinimo: 2},
		{ID: "2", Nombre: "ácido clorhídrico", Categoria: "Reactivos", StockActual: 1, StockMinimo: 3},
		{ID: "3", Nombre: "Matraz", Categoria: "Vidrio", StockActual: 0, StockMinimo: 1},
		{ID: "4", Nombre: "Balanza", Categoria: "Equipos", Ubicacion: "Lab Química", StockActual: 2, StockMinimo: 1},
	}
}

func names(views []domain.InsumoView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Nombre)
	}
	return out
}

func TestSupplyService_ListSortsAndFilters(t *testing.T) {
	repo := &repoMock{ListFn: func(context.Context) ([]domain.Insumo, error) { return sampleInsumos(), nil }}
	svc := NewSupplyService(repo, nil, nil)

	all, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ácido clorhídrico", "Balanza", "Matraz", "Probeta"}, names(all))

	vidrio, err := svc.List(context.Background(), ListFilter{Categoria: "vidrio"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Matraz", "Probeta"}, names(vidrio))

	low, err := svc.List(context.Background(), ListFilter{Nivel: "bajo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ácido clorhídrico"}, names(low))

	text, err := svc.List(context.Background(), ListFilter{Query: "quimica"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Balanza"}, names(text))

	none, err := svc.List(context.Background(), ListFilter{Categoria: "Vidrio", Nivel: "bajo"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSupplyService_ListError(t *testing.T) {
	boom := errors.New("upstream down")
	svc := NewSupplyService(&repoMock{ListFn: func(context.Context) ([]domain.Insumo, error) { return nil, boom }}, nil, nil)

	_, err := svc.List(context.Background(), ListFilter{})
	assert.ErrorIs(t, err, boom)
	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSupplyService_Maintenance_SortedNewestFirst(t *testing.T) {
	d := func(s string) types.Date { v, _ := types.ParseDate(s); return v }
	repo := &repoMock{ListMaintenanceFn: func(_ context.Context, id string) ([]domain.Mantenimiento, error) {
		assert.Equal(t, "1", id)
		return []domain.Mantenimiento{
			{ID: "a", FechaInicio: d("2024-01-01")},
			{ID: "b", FechaInicio: d("2024-03-01")},
			{ID: "c", FechaInicio: d("2024-02-01")},
		}, nil
	}}

	got, err := NewSupplyService(repo, nil, nil).Maintenance(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, types.ID("b"), got[0].ID)
	assert.Equal(t, types.ID("c"), got[1].ID)
	assert.Equal(t, types.ID("a"), got[2].ID)
}

func TestSupplyService_LogMaintenance_AlertsWhenOutOfStock(t *testing.T) {
	alerter := &alerterMock{}
	repo := &repoMock{
		CreateMaintenanceFn: func(_ context.Context, in domain.MantenimientoInput) (*domain.Mantenimiento, error) {
			assert.Equal(t, types.ID("7"), in.InsumoID)
			return &domain.Mantenimiento{ID: "50", InsumoID: in.InsumoID, Cantidad: types.Quantity(in.Cantidad)}, nil
		},
		GetFn: func(_ context.Context, id string) (*domain.Insumo, error) {
			return &domain.Insumo{ID: "7", Nombre: "Microscopio", StockActual: 2, CantidadEnMantenimiento: 2}, nil
		},
	}
	svc := NewSupplyService(repo, alerter, nil)

	m, view, err := svc.LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 2, Descripcion: "lentes", Responsable: "Luis", FechaInicio: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, types.ID("50"), m.ID)
	require.NotNil(t, view)
	assert.Equal(t, domain.StockSinStock, view.Nivel)

	require.Len(t, alerter.alerted, 1)
	assert.Equal(t, types.ID("7"), alerter.alerted[0].ID)
	assert.Equal(t, "Microscopio", alerter.alerted[0].Nombre)
}

func TestSupplyService_LogMaintenance_AlertFailureKeepsResult(t *testing.T) {
	alerter := &alerterMock{err: errors.New("redis down")}
	repo := &repoMock{
		CreateMaintenanceFn: func(context.Context, domain.MantenimientoInput) (*domain.Mantenimiento, error) {
			return &domain.Mantenimiento{ID: "1"}, nil
		},
		GetFn: func(context.Context, string) (*domain.Insumo, error) {
			return &domain.Insumo{ID: "7", StockActual: 1, CantidadEnMantenimiento: 1}, nil
		},
	}

	m, view, err := NewSupplyService(repo, alerter, nil).LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 1, FechaInicio: "2024-05-01"})
	require.NoError(t, err)
	assert.NotNil(t, m)
	require.NotNil(t, view)
	assert.Len(t, alerter.alerted, 1)
}

func TestSupplyService_LogMaintenance_NoAlertWithStockLeft(t *testing.T) {
	alerter := &alerterMock{}
	repo := &repoMock{
		CreateMaintenanceFn: func(context.Context, domain.MantenimientoInput) (*domain.Mantenimiento, error) {
			return &domain.Mantenimiento{ID: "1"}, nil
		},
		GetFn: func(context.Context, string) (*domain.Insumo, error) {
			return &domain.Insumo{ID: "7", StockActual: 5, CantidadEnMantenimiento: 1}, nil
		},
	}

	_, view, err := NewSupplyService(repo, alerter, nil).LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 1, FechaInicio: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 4, view.StockDisponible)
	assert.Empty(t, alerter.alerted)
}

func TestSupplyService_LogMaintenance_ReloadFailureKeepsRecord(t *testing.T) {
	repo := &repoMock{
		CreateMaintenanceFn: func(context.Context, domain.MantenimientoInput) (*domain.Mantenimiento, error) {
			return &domain.Mantenimiento{ID: "1"}, nil
		},
		GetFn: func(context.Context, string) (*domain.Insumo, error) { return nil, errors.New("timeout") },
	}

	m, view, err := NewSupplyService(repo, &alerterMock{}, nil).LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 1, FechaInicio: "2024-05-01"})
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Nil(t, view)
}

func TestSupplyService_LogMaintenance_InvalidDate(t *testing.T) {
	repo := &repoMock{}
	svc := NewSupplyService(repo, nil, nil)

	_, _, err := svc.LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 1, FechaInicio: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidFecha)

	_, _, err = svc.LogMaintenance(context.Background(), "7", domain.MantenimientoInput{Cantidad: 1, FechaInicio: "2024-05-01", FechaFin: "pronto"})
	assert.ErrorIs(t, err, domain.ErrInvalidFecha)
}

func TestSupplyService_Mutations(t *testing.T) {
	deleted := ""
	repo := &repoMock{
		CreateFn: func(_ context.Context, in domain.InsumoInput) (*domain.Insumo, error) {
			return &domain.Insumo{ID: "9", Nombre: in.Nombre, StockActual: types.Quantity(in.StockActual)}, nil
		},
		UpdateFn: func(_ context.Context, id string, in domain.InsumoInput) (*domain.Insumo, error) {
			return &domain.Insumo{ID: types.ID(id), Nombre: in.Nombre}, nil
		},
		DeleteFn: func(_ context.Context, id string) error { deleted = id; return nil },
		GetFn: func(_ context.Context, id string) (*domain.Insumo, error) {
			return nil, domain.ErrInsumoNotFound
		},
	}
	svc := NewSupplyService(repo, nil, nil)

	created, err := svc.Create(context.Background(), domain.InsumoInput{Nombre: "Gradilla", StockActual: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, created.StockDisponible)

	updated, err := svc.Update(context.Background(), "9", domain.InsumoInput{Nombre: "Gradilla x10"})
	require.NoError(t, err)
	assert.Equal(t, domain.StockSinStock, updated.Nivel)

	require.NoError(t, svc.Delete(context.Background(), "9"))
	assert.Equal(t, "9", deleted)

	_, err = svc.Get(context.Background(), "9")
	assert.ErrorIs(t, err, domain.ErrInsumoNotFound)
}
