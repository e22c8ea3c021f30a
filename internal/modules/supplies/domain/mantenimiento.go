package domain

import "github.com/unilab/labdash/internal/shared/types"

// Mantenimiento withholds Cantidad units of an insumo while it is serviced.
type Mantenimiento struct {
	ID          types.ID       `json:"id"`
	InsumoID    types.ID       `json:"insumo_id"`
	Cantidad    types.Quantity `json:"cantidad"`
	Descripcion string         `json:"descripcion"`
	Responsable string         `json:"responsable"`
	FechaInicio types.Date     `json:"fecha_inicio"`
	FechaFin    types.Date     `json:"fecha_fin"`
	Estado      string         `json:"estado"`
}

type MantenimientoInput struct {
	InsumoID    types.ID `json:"insumo_id"`
	Cantidad    int      `json:"cantidad" validate:"gt=0"`
	Descripcion string   `json:"descripcion" validate:"required,notblank,max=500"`
	Responsable string   `json:"responsable" validate:"required,notblank"`
	FechaInicio string   `json:"fecha_inicio" validate:"required"`
	FechaFin    string   `json:"fecha_fin,omitempty"`
	Estado      string   `json:"estado,omitempty"`
}
