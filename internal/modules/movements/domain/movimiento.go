package domain

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/unilab/labdash/internal/shared/types"
)

type Tipo string

const (
	TipoPrestamo   Tipo = "PRESTAMO"
	TipoDevolucion Tipo = "DEVOLUCION"
)

// Normalize upper-cases the tipo and strips the accent some clients send.
func (t Tipo) Normalize() Tipo {
	s := strings.ToUpper(strings.TrimSpace(string(t)))
	s = strings.ReplaceAll(s, "Ó", "O")
	return Tipo(s)
}

type Movimiento struct {
	ID            types.ID       `json:"id"`
	InsumoID      types.ID       `json:"insumo_id"`
	InsumoNombre  string         `json:"insumo_nombre"`
	SolicitudID   types.ID       `json:"solicitud_id"`
	Tipo          Tipo           `json:"tipo"`
	Cantidad      types.Quantity `json:"cantidad"`
	Fecha         types.Date     `json:"fecha"`
	Responsable   string         `json:"responsable"`
	Observaciones string         `json:"observaciones"`
}

// Group sums the movements of one solicitud. Movements without a solicitud
// share the group whose SolicitudID is "".
type Group struct {
	SolicitudID string       `json:"solicitud_id"`
	Prestado    int          `json:"prestado"`
	Devuelto    int          `json:"devuelto"`
	Pendiente   int          `json:"pendiente"`
	UltimaFecha types.Date   `json:"ultima_fecha"`
	Movimientos []Movimiento `json:"movimientos"`
}

// GroupBySolicitud groups items by solicitud id. Pendiente is prestado minus
// devuelto floored at zero. Groups come newest first by their latest fecha;
// movements inside a group keep their input order.
func GroupBySolicitud(items []Movimiento) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, m := range items {
		key := m.SolicitudID.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{SolicitudID: key})
		}
		g := &groups[i]
		switch m.Tipo.Normalize() {
		case TipoPrestamo:
			g.Prestado += m.Cantidad.Int()
		case TipoDevolucion:
			g.Devuelto += m.Cantidad.Int()
		}
		if m.Fecha.After(g.UltimaFecha.Time) {
			g.UltimaFecha = m.Fecha
		}
		g.Movimientos = append(g.Movimientos, m)
	}
	for i := range groups {
		if p := groups[i].Prestado - groups[i].Devuelto; p > 0 {
			groups[i].Pendiente = p
		}
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].UltimaFecha.After(groups[b].UltimaFecha.Time)
	})
	if groups == nil {
		groups = []Group{}
	}
	return groups
}

// SortByFechaDesc orders movements newest first, stable for equal dates.
func SortByFechaDesc(items []Movimiento) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Fecha.After(items[b].Fecha.Time)
	})
}

// Span is the date interval used by range filters.
func (m Movimiento) Span() (time.Time, time.Time) {
	return m.Fecha.Time, m.Fecha.Time
}

type Repository interface {
	List(ctx context.Context) ([]Movimiento, error)
}
