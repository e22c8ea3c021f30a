package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/shared/types"
)

func TestInsumo_StockDisponibleFloorsAtZero(t *testing.T) {
	assert.Equal(t, 7, Insumo{StockActual: 10, CantidadEnMantenimiento: 3}.StockDisponible())
	assert.Equal(t, 0, Insumo{StockActual: 2, CantidadEnMantenimiento: 5}.StockDisponible())
	assert.Equal(t, 0, Insumo{}.StockDisponible())
}

func TestInsumo_Nivel(t *testing.T) {
	tests := []struct {
		name   string
		insumo Insumo
		want   StockLevel
	}{
		{"empty", Insumo{StockActual: 0, StockMinimo: 5}, StockSinStock},
		{"all_in_maintenance", Insumo{StockActual: 4, CantidadEnMantenimiento: 4, StockMinimo: 1}, StockSinStock},
		{"at_minimum", Insumo{StockActual: 5, StockMinimo: 5}, StockBajo},
		{"below_after_maintenance", Insumo{StockActual: 10, CantidadEnMantenimiento: 8, StockMinimo: 3}, StockBajo},
		{"over_maximum", Insumo{StockActual: 30, StockMinimo: 5, StockMaximo: 20}, StockExceso},
		{"no_maximum", Insumo{StockActual: 300, StockMinimo: 5}, StockNormal},
		{"normal", Insumo{StockActual: 10, StockMinimo: 5, StockMaximo: 20}, StockNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.insumo.Nivel())
			assert.Equal(t, tt.want == StockSinStock || tt.want == StockBajo, tt.insumo.IsLow())
		})
	}
}

func TestInsumo_DecodesLenientUpstream(t *testing.T) {
	var i Insumo
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "nombre": "Pipeta", "stock_actual": "12", "stock_minimo": 4, "cantidad_en_mantenimiento": null}`), &i))

	assert.Equal(t, types.ID("3"), i.ID)
	assert.Equal(t, 12, i.StockDisponible())

	out, err := json.Marshal(NewView(i))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"stock_disponible":12`)
	assert.Contains(t, string(out), `"nivel":"normal"`)
	assert.Contains(t, string(out), `"id":3`)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Insumo{
		{Categoria: "Vidrio", StockActual: 0},
		{Categoria: "Vidrio", StockActual: 3, StockMinimo: 5},
		{Categoria: "", StockActual: 10, StockMinimo: 2, CantidadEnMantenimiento: 1},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.PorNivel[StockSinStock])
	assert.Equal(t, 1, s.PorNivel[StockBajo])
	assert.Equal(t, 1, s.PorNivel[StockNormal])
	assert.Equal(t, 0, s.PorNivel[StockExceso])
	assert.Equal(t, 2, s.PorCategoria["Vidrio"])
	assert.Equal(t, 1, s.PorCategoria["sin categoria"])
	assert.Equal(t, 13, s.StockTotal)
	assert.Equal(t, 1, s.EnMantenimiento)
}
