package domain

import (
	"context"
	"errors"
)

var ErrSolicitudNotFound = errors.New("solicitud not found")

type Repository interface {
	List(ctx context.Context) ([]Solicitud, error)
	Get(ctx context.Context, id string) (*Solicitud, error)
	UpdateEstado(ctx context.Context, id string, update EstadoUpdate) (*Solicitud, error)
}
