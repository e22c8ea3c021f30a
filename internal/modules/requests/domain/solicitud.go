package domain

import (
	"sort"
	"strings"

	"github.com/unilab/labdash/internal/shared/types"
)

type TipoSolicitante string

const (
	TipoEstudiante TipoSolicitante = "estudiante"
	TipoDocente    TipoSolicitante = "docente"
)

func (t TipoSolicitante) Normalize() TipoSolicitante {
	if strings.EqualFold(strings.TrimSpace(string(t)), string(TipoDocente)) {
		return TipoDocente
	}
	return TipoEstudiante
}

type Estado string

const (
	EstadoPendiente  Estado = "Pendiente"
	EstadoAprobada   Estado = "Aprobada"
	EstadoCompletada Estado = "Completada"
	EstadoRechazada  Estado = "Rechazada"
)

var estados = []Estado{EstadoPendiente, EstadoAprobada, EstadoCompletada, EstadoRechazada}

// Normalize maps any casing of a known estado to its canonical form. Empty
// means Pendiente; unknown values are kept as sent.
func (e Estado) Normalize() Estado {
	v := strings.TrimSpace(string(e))
	if v == "" {
		return EstadoPendiente
	}
	for _, known := range estados {
		if strings.EqualFold(v, string(known)) {
			return known
		}
	}
	return Estado(v)
}

// Priority orders the solicitudes page: open work first.
func (e Estado) Priority() int {
	for i, known := range estados {
		if e.Normalize() == known {
			return i
		}
	}
	return len(estados)
}

// Accion is a status change the page offers for a solicitud.
type Accion string

const (
	AccionAprobar   Accion = "aprobar"
	AccionRechazar  Accion = "rechazar"
	AccionCompletar Accion = "completar"
)

// Target is the estado an action leads to.
func (a Accion) Target() Estado {
	switch a {
	case AccionAprobar:
		return EstadoAprobada
	case AccionRechazar:
		return EstadoRechazada
	default:
		return EstadoCompletada
	}
}

// Acciones lists the transitions offered from e. Rechazada and Completada are
// terminal. This only drives the UI; the lab API enforces the workflow.
func Acciones(e Estado) []Accion {
	switch e.Normalize() {
	case EstadoPendiente:
		return []Accion{AccionAprobar, AccionRechazar}
	case EstadoAprobada:
		return []Accion{AccionCompletar}
	default:
		return []Accion{}
	}
}

type Solicitud struct {
	ID                types.ID        `json:"id"`
	TipoSolicitante   TipoSolicitante `json:"tipo_solicitante"`
	NombreSolicitante string          `json:"nombre_solicitante"`
	CorreoSolicitante string          `json:"correo_solicitante"`
	Laboratorio       string          `json:"laboratorio"`
	Motivo            string          `json:"motivo"`
	MotivoRechazo     string          `json:"motivo_rechazo,omitempty"`
	FechaInicio       types.Date      `json:"fecha_inicio"`
	FechaFin          types.Date      `json:"fecha_fin"`
	Estado            Estado          `json:"estado"`
	CreatedAt         types.Date      `json:"created_at"`
}

// Normalize applies the defaults for fields the upstream may leave empty.
func (s Solicitud) Normalize() Solicitud {
	s.TipoSolicitante = s.TipoSolicitante.Normalize()
	s.Estado = s.Estado.Normalize()
	return s
}

type SolicitudView struct {
	Solicitud
	Acciones []Accion `json:"acciones"`
}

func NewView(s Solicitud) SolicitudView {
	s = s.Normalize()
	return SolicitudView{Solicitud: s, Acciones: Acciones(s.Estado)}
}

// SortViews orders by estado priority, then by fecha_inicio descending. Ties
// keep their upstream order.
func SortViews(items []SolicitudView) {
	sort.SliceStable(items, func(a, b int) bool {
		pa, pb := items[a].Estado.Priority(), items[b].Estado.Priority()
		if pa != pb {
			return pa < pb
		}
		return items[a].FechaInicio.After(items[b].FechaInicio.Time)
	})
}

// EstadoUpdate is the PATCH body the lab API accepts.
type EstadoUpdate struct {
	Estado        Estado `json:"estado"`
	MotivoRechazo string `json:"motivo_rechazo,omitempty"`
}
