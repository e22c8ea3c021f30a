package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/types"
)

func date(s string) types.Date {
	d, _ := types.ParseDate(s)
	return d
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 7, 19, 15, 0, 0, 0, time.UTC)

	m, err := ParseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), m)

	m, err = ParseMonth("2024-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, m.Month())

	_, err = ParseMonth("2024/02", now)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestCellColor_Priority(t *testing.T) {
	tests := []struct {
		name    string
		estados []requestsDomain.Estado
		want    string
	}{
		{"empty", nil, ""},
		{"pendiente_wins", []requestsDomain.Estado{"Rechazada", "Completada", "Aprobada", "Pendiente"}, ColorPendiente},
		{"aprobada_over_completada", []requestsDomain.Estado{"Completada", "Aprobada"}, ColorAprobada},
		{"completada_over_rechazada", []requestsDomain.Estado{"Rechazada", "Completada"}, ColorCompletada},
		{"rechazada_only", []requestsDomain.Estado{"rechazada"}, ColorRechazada},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]Entry, 0, len(tt.estados))
			for _, e := range tt.estados {
				entries = append(entries, Entry{Estado: e})
			}
			assert.Equal(t, tt.want, CellColor(entries))
		})
	}
}

func TestBuildMonth(t *testing.T) {
	sols := []requestsDomain.Solicitud{
		{ID: "1", Estado: requestsDomain.EstadoAprobada, FechaInicio: date("2024-02-28T09:00"), FechaFin: date("2024-03-02T12:00")},
		{ID: "2", Estado: requestsDomain.EstadoPendiente, FechaInicio: date("2024-02-10T09:00")},
		{ID: "3", Estado: requestsDomain.EstadoRechazada, FechaInicio: date("2024-01-31T09:00")},
		{ID: "4", Estado: requestsDomain.EstadoPendiente},
	}

	m := BuildMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), sols)

	assert.Equal(t, "2024-02", m.Mes)
	require.Len(t, m.Dias, 29)
	assert.Equal(t, "2024-02-01", m.Dias[0].Fecha)
	assert.Empty(t, m.Dias[0].Solicitudes)
	assert.NotNil(t, m.Dias[0].Solicitudes)
	assert.Equal(t, "", m.Dias[0].Color)

	assert.Equal(t, ColorPendiente, m.Dias[9].Color)
	assert.Equal(t, types.ID("2"), m.Dias[9].Solicitudes[0].ID)

	assert.Equal(t, ColorAprobada, m.Dias[27].Color)
	assert.Equal(t, ColorAprobada, m.Dias[28].Color)
	assert.Equal(t, 29, m.Dias[28].Dia)
}
