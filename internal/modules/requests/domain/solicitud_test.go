package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/shared/types"
)

func date(s string) types.Date {
	d, _ := types.ParseDate(s)
	return d
}

func TestEstado_Normalize(t *testing.T) {
	assert.Equal(t, EstadoPendiente, Estado("").Normalize())
	assert.Equal(t, EstadoAprobada, Estado("aprobada").Normalize())
	assert.Equal(t, EstadoRechazada, Estado(" RECHAZADA ").Normalize())
	assert.Equal(t, Estado("Archivada"), Estado("Archivada").Normalize())
}

func TestTipoSolicitante_DefaultsToEstudiante(t *testing.T) {
	assert.Equal(t, TipoEstudiante, TipoSolicitante("").Normalize())
	assert.Equal(t, TipoEstudiante, TipoSolicitante("otro").Normalize())
	assert.Equal(t, TipoDocente, TipoSolicitante("Docente").Normalize())
}

func TestAcciones(t *testing.T) {
	assert.Equal(t, []Accion{AccionAprobar, AccionRechazar}, Acciones(EstadoPendiente))
	assert.Equal(t, []Accion{AccionCompletar}, Acciones(EstadoAprobada))
	assert.Empty(t, Acciones(EstadoRechazada))
	assert.Empty(t, Acciones(EstadoCompletada))

	assert.Equal(t, EstadoAprobada, AccionAprobar.Target())
	assert.Equal(t, EstadoRechazada, AccionRechazar.Target())
	assert.Equal(t, EstadoCompletada, AccionCompletar.Target())
}

func TestSortViews(t *testing.T) {
	items := []SolicitudView{
		NewView(Solicitud{ID: "r1", Estado: EstadoRechazada, FechaInicio: date("2024-05-10")}),
		NewView(Solicitud{ID: "p-old", Estado: EstadoPendiente, FechaInicio: date("2024-05-01")}),
		NewView(Solicitud{ID: "c1", Estado: EstadoCompletada, FechaInicio: date("2024-05-20")}),
		NewView(Solicitud{ID: "p-new", Estado: "pendiente", FechaInicio: date("2024-05-09")}),
		NewView(Solicitud{ID: "a1", Estado: EstadoAprobada, FechaInicio: date("2024-04-01")}),
		NewView(Solicitud{ID: "p-tie-1", Estado: EstadoPendiente, FechaInicio: date("2024-05-05")}),
		NewView(Solicitud{ID: "p-tie-2", Estado: EstadoPendiente, FechaInicio: date("2024-05-05")}),
		NewView(Solicitud{ID: "x", Estado: "Archivada", FechaInicio: date("2024-06-01")}),
	}

	SortViews(items)

	got := make([]types.ID, 0, len(items))
	for _, s := range items {
		got = append(got, s.ID)
	}
	assert.Equal(t, []types.ID{"p-new", "p-tie-1", "p-tie-2", "p-old", "a1", "c1", "r1", "x"}, got)
}

func TestSolicitud_DecodeDefaults(t *testing.T) {
	var s Solicitud
	require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "nombre_solicitante": "Ana", "fecha_inicio": "2024-05-01T08:00", "estado": null}`), &s))

	v := NewView(s)
	assert.Equal(t, TipoEstudiante, v.TipoSolicitante)
	assert.Equal(t, EstadoPendiente, v.Estado)
	assert.Equal(t, 8, v.FechaInicio.Hour())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"acciones":["aprobar","rechazar"]`)
	assert.NotContains(t, string(out), "motivo_rechazo")
}
