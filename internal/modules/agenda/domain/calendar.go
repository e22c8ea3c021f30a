package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/types"
)

const (
	ColorPendiente  = "#f59e0b"
	ColorAprobada   = "#10b981"
	ColorCompletada = "#3b82f6"
	ColorRechazada  = "#ef4444"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// Entry is the part of a solicitud shown inside a calendar cell.
type Entry struct {
	ID                types.ID              `json:"id"`
	NombreSolicitante string                `json:"nombre_solicitante"`
	Laboratorio       string                `json:"laboratorio"`
	Estado            requestsDomain.Estado `json:"estado"`
	FechaInicio       types.Date            `json:"fecha_inicio"`
	FechaFin          types.Date            `json:"fecha_fin"`
}

type Cell struct {
	Fecha       string  `json:"fecha"`
	Dia         int     `json:"dia"`
	Color       string  `json:"color"`
	Solicitudes []Entry `json:"solicitudes"`
}

type Month struct {
	Mes  string `json:"mes"`
	Dias []Cell `json:"dias"`
}

// ParseMonth reads "YYYY-MM". An empty value means the month of now.
func ParseMonth(mes string, now time.Time) (time.Time, error) {
	mes = strings.TrimSpace(mes)
	if mes == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", mes)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", mes, ErrInvalidMonth)
	}
	return t, nil
}

// CellColor picks the color of the most urgent estado present:
// Pendiente, then Aprobada, then Completada, then Rechazada.
func CellColor(entries []Entry) string {
	var has [4]bool
	for _, e := range entries {
		switch e.Estado.Normalize() {
		case requestsDomain.EstadoPendiente:
			has[0] = true
		case requestsDomain.EstadoAprobada:
			has[1] = true
		case requestsDomain.EstadoCompletada:
			has[2] = true
		case requestsDomain.EstadoRechazada:
			has[3] = true
		}
	}
	colors := [4]string{ColorPendiente, ColorAprobada, ColorCompletada, ColorRechazada}
	for i, ok := range has {
		if ok {
			return colors[i]
		}
	}
	return ""
}

// BuildMonth lays out one cell per day of the month starting at first, each
// with the solicitudes whose [fecha_inicio, fecha_fin] overlaps that day.
// Solicitudes without fecha_inicio are skipped.
func BuildMonth(first time.Time, solicitudes []requestsDomain.Solicitud) Month {
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	m := Month{Mes: first.Format("2006-01")}
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		dayEnd := day.AddDate(0, 0, 1)
		cell := Cell{Fecha: day.Format("2006-01-02"), Dia: day.Day(), Solicitudes: []Entry{}}
		for _, s := range solicitudes {
			if overlaps(s, day, dayEnd) {
				cell.Solicitudes = append(cell.Solicitudes, Entry{
					ID:                s.ID,
					NombreSolicitante: s.NombreSolicitante,
					Laboratorio:       s.Laboratorio,
					Estado:            s.Estado.Normalize(),
					FechaInicio:       s.FechaInicio,
					FechaFin:          s.FechaFin,
				})
			}
		}
		cell.Color = CellColor(cell.Solicitudes)
		m.Dias = append(m.Dias, cell)
	}
	return m
}

// overlaps compares wall-clock dates, ignoring the zone the upstream wrote.
func overlaps(s requestsDomain.Solicitud, dayStart, dayEnd time.Time) bool {
	if s.FechaInicio.IsZero() {
		return false
	}
	start := wallClock(s.FechaInicio.Time)
	end := start
	if !s.FechaFin.IsZero() {
		end = wallClock(s.FechaFin.Time)
	}
	return start.Before(dayEnd) && !end.Before(dayStart)
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
