package domain

import (
	"context"
	"errors"
)

var (
	ErrInsumoNotFound = errors.New("insumo not found")
	ErrInvalidFecha   = errors.New("invalid date")
)

// Repository is the supplies view of the lab API.
type Repository interface {
	List(ctx context.Context) ([]Insumo, error)
	Get(ctx context.Context, id string) (*Insumo, error)
	Create(ctx context.Context, in InsumoInput) (*Insumo, error)
	Update(ctx context.Context, id string, in InsumoInput) (*Insumo, error)
	Delete(ctx context.Context, id string) error
	ListMaintenance(ctx context.Context, insumoID string) ([]Mantenimiento, error)
	CreateMaintenance(ctx context.Context, in MantenimientoInput) (*Mantenimiento, error)
}
