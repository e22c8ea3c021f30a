package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	movementsDomain "github.com/unilab/labdash/internal/modules/movements/domain"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	suppliesDomain "github.com/unilab/labdash/internal/modules/supplies/domain"
)

const (
	SeriesMonths = 6
	TopLimit     = 5
)

var ErrInvalidFormato = errors.New("invalid export format")

type InsumoCounts struct {
	Total    int                               `json:"total"`
	PorNivel map[suppliesDomain.StockLevel]int `json:"por_nivel"`
}

type SolicitudCounts struct {
	Total     int                                    `json:"total"`
	PorEstado map[requestsDomain.Estado]int          `json:"por_estado"`
	PorTipo   map[requestsDomain.TipoSolicitante]int `json:"por_tipo"`
}

type MovimientoCounts struct {
	Total   int                          `json:"total"`
	PorTipo map[movementsDomain.Tipo]int `json:"por_tipo"`
}

// MonthPoint is one bar of the loans chart. Amounts are summed cantidades.
type MonthPoint struct {
	Mes          string `json:"mes"`
	Prestamos    int    `json:"prestamos"`
	Devoluciones int    `json:"devoluciones"`
}

type TopItem struct {
	InsumoID string `json:"insumo_id"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// Summary is everything the reports page draws.
type Summary struct {
	Insumos      InsumoCounts     `json:"insumos"`
	Solicitudes  SolicitudCounts  `json:"solicitudes"`
	Movimientos  MovimientoCounts `json:"movimientos"`
	Serie        []MonthPoint     `json:"serie_mensual"`
	TopPrestados []TopItem        `json:"top_prestados"`
	GeneradoEn   time.Time        `json:"generado_en"`
}

func CountInsumos(items []suppliesDomain.Insumo) InsumoCounts {
	c := InsumoCounts{Total: len(items), PorNivel: map[suppliesDomain.StockLevel]int{
		suppliesDomain.StockSinStock: 0,
		suppliesDomain.StockBajo:     0,
		suppliesDomain.StockNormal:   0,
		suppliesDomain.StockExceso:   0,
	}}
	for _, i := range items {
		c.PorNivel[i.Nivel()]++
	}
	return c
}

func CountSolicitudes(items []requestsDomain.Solicitud) SolicitudCounts {
	c := SolicitudCounts{
		Total: len(items),
		PorEstado: map[requestsDomain.Estado]int{
			requestsDomain.EstadoPendiente:  0,
			requestsDomain.EstadoAprobada:   0,
			requestsDomain.EstadoCompletada: 0,
			requestsDomain.EstadoRechazada:  0,
		},
		PorTipo: map[requestsDomain.TipoSolicitante]int{
			requestsDomain.TipoDocente:    0,
			requestsDomain.TipoEstudiante: 0,
		},
	}
	for _, s := range items {
		s = s.Normalize()
		c.PorEstado[s.Estado]++
		c.PorTipo[s.TipoSolicitante]++
	}
	return c
}

func CountMovimientos(items []movementsDomain.Movimiento) MovimientoCounts {
	c := MovimientoCounts{Total: len(items), PorTipo: map[movementsDomain.Tipo]int{
		movementsDomain.TipoPrestamo:   0,
		movementsDomain.TipoDevolucion: 0,
	}}
	for _, m := range items {
		c.PorTipo[m.Tipo.Normalize()]++
	}
	return c
}

// MonthlySeries sums loans and returns per calendar month for the n months
// ending with the month of now, oldest first. Undated movements are skipped.
func MonthlySeries(items []movementsDomain.Movimiento, now time.Time, n int) []MonthPoint {
	if n <= 0 {
		return []MonthPoint{}
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(n - 1), 0)

	points := make([]MonthPoint, n)
	index := make(map[string]int, n)
	for i := range points {
		mes := first.AddDate(0, i, 0).Format("2006-01")
		points[i].Mes = mes
		index[mes] = i
	}

	for _, m := range items {
		if m.Fecha.IsZero() {
			continue
		}
		i, ok := index[m.Fecha.Format("2006-01")]
		if !ok {
			continue
		}
		switch m.Tipo.Normalize() {
		case movementsDomain.TipoPrestamo:
			points[i].Prestamos += m.Cantidad.Int()
		case movementsDomain.TipoDevolucion:
			points[i].Devoluciones += m.Cantidad.Int()
		}
	}
	return points
}

// TopLent ranks insumos by total quantity lent, ties broken by nombre.
// Movements without an insumo id are keyed by nombre.
func TopLent(items []movementsDomain.Movimiento, limit int) []TopItem {
	index := make(map[string]int)
	out := []TopItem{}
	for _, m := range items {
		if m.Tipo.Normalize() != movementsDomain.TipoPrestamo {
			continue
		}
		key := m.InsumoID.String()
		if key == "" {
			key = "nombre:" + m.InsumoNombre
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, TopItem{InsumoID: m.InsumoID.String(), Nombre: m.InsumoNombre})
		}
		if out[i].Nombre == "" {
			out[i].Nombre = m.InsumoNombre
		}
		out[i].Cantidad += m.Cantidad.Int()
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Cantidad != out[b].Cantidad {
			return out[a].Cantidad > out[b].Cantidad
		}
		return out[a].Nombre < out[b].Nombre
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type Formato string

const (
	FormatoPDF  Formato = "pdf"
	FormatoXLSX Formato = "xlsx"
)

// ContentType is used when the lab API does not send one.
func (f Formato) ContentType() (string, error) {
	switch f {
	case FormatoPDF:
		return "application/pdf", nil
	case FormatoXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormato, string(f))
}

// ExportRequest asks the lab API for a report file over an optional range.
type ExportRequest struct {
	Formato Formato `json:"formato" validate:"required,oneof=pdf xlsx"`
	Desde   string  `json:"desde,omitempty"`
	Hasta   string  `json:"hasta,omitempty"`
}

// Filename is reporte_<desde>_<hasta>.<formato>; open ends read "inicio" and "hoy".
func (r ExportRequest) Filename() string {
	desde, hasta := r.Desde, r.Hasta
	if desde == "" {
		desde = "inicio"
	}
	if hasta == "" {
		hasta = "hoy"
	}
	return fmt.Sprintf("reporte_%s_%s.%s", desde, hasta, r.Formato)
}

// Exporter produces the report bytes.
type Exporter interface {
	Export(ctx context.Context, req ExportRequest) ([]byte, string, error)
}
