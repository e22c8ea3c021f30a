package domain

import (
	"github.com/unilab/labdash/internal/shared/types"
)

type StockLevel string

const (
	StockSinStock StockLevel = "sin_stock"
	StockBajo     StockLevel = "bajo"
	StockExceso   StockLevel = "exceso"
	StockNormal   StockLevel = "normal"
)

// Insumo is an inventory item as the lab API stores it.
type Insumo struct {
	ID                      types.ID       `json:"id"`
	Nombre                  string         `json:"nombre"`
	Categoria               string         `json:"categoria"`
	Ubicacion               string         `json:"ubicacion"`
	Unidad                  string         `json:"unidad"`
	StockActual             types.Quantity `json:"stock_actual"`
	StockMinimo             types.Quantity `json:"stock_minimo"`
	StockMaximo             types.Quantity `json:"stock_maximo"`
	CantidadEnMantenimiento types.Quantity `json:"cantidad_en_mantenimiento"`
}

// StockDisponible is the stock not withheld by maintenance, floored at zero.
func (i Insumo) StockDisponible() int {
	if d := i.StockActual.Int() - i.CantidadEnMantenimiento.Int(); d > 0 {
		return d
	}
	return 0
}

func (i Insumo) Nivel() StockLevel {
	disponible := i.StockDisponible()
	switch {
	case disponible == 0:
		return StockSinStock
	case disponible <= i.StockMinimo.Int():
		return StockBajo
	case i.StockMaximo > 0 && i.StockActual > i.StockMaximo:
		return StockExceso
	default:
		return StockNormal
	}
}

// IsLow reports whether the item should raise a low-stock alert.
func (i Insumo) IsLow() bool {
	n := i.Nivel()
	return n == StockSinStock || n == StockBajo
}

// InsumoView carries the display-only derived fields next to the record.
// They are never sent back upstream.
type InsumoView struct {
	Insumo
	StockDisponible int        `json:"stock_disponible"`
	Nivel           StockLevel `json:"nivel"`
}

func NewView(i Insumo) InsumoView {
	return InsumoView{Insumo: i, StockDisponible: i.StockDisponible(), Nivel: i.Nivel()}
}

// InsumoInput is the body of a create or update.
type InsumoInput struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=150"`
	Categoria   string `json:"categoria" validate:"required,notblank"`
	Ubicacion   string `json:"ubicacion"`
	Unidad      string `json:"unidad"`
	StockActual int    `json:"stock_actual" validate:"gte=0"`
	StockMinimo int    `json:"stock_minimo" validate:"gte=0"`
	StockMaximo int    `json:"stock_maximo" validate:"gte=0"`
}

// Summary feeds the supplies page header cards.
type Summary struct {
	Total           int                `json:"total"`
	PorNivel        map[StockLevel]int `json:"por_nivel"`
	PorCategoria    map[string]int     `json:"por_categoria"`
	StockTotal      int                `json:"stock_total"`
	EnMantenimiento int                `json:"en_mantenimiento"`
}

func Summarize(items []Insumo) Summary {
	s := Summary{
		PorNivel: map[StockLevel]int{
			StockSinStock: 0,
			StockBajo:     0,
			StockNormal:   0,
			StockExceso:   0,
		},
		PorCategoria: map[string]int{},
	}
	for _, i := range items {
		s.Total++
		s.PorNivel[i.Nivel()]++
		cat := i.Categoria
		if cat == "" {
			cat = "sin categoria"
		}
		s.PorCategoria[cat]++
		s.StockTotal += i.StockActual.Int()
		s.EnMantenimiento += i.CantidadEnMantenimiento.Int()
	}
	return s
}
