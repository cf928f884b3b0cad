// Package render рисует окно плеера 800x600 пикселей в сетке ячеек терминала
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/hazadus/go-jukebox/internal/geometry"
)

// Размеры окна и ячейки в пикселях
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	CellWidth    = 10
	CellHeight   = 25 // Совпадает с высотой шрифта подписей треков
)

// Viewport переводит координаты ячеек терминала в пиксели окна и обратно
type Viewport struct {
	Cols       int
	Rows       int
	CellWidth  float64
	CellHeight float64
}

// DefaultViewport возвращает сетку 80x24, покрывающую окно 800x600
func DefaultViewport() Viewport {
	return Viewport{
		Cols:       ScreenWidth / CellWidth,
		Rows:       ScreenHeight / CellHeight,
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
	}
}

// PixelAt возвращает пиксельные координаты центра ячейки
func (v Viewport) PixelAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellWidth, (float64(row) + 0.5) * v.CellHeight
}

// InBounds сообщает, попадает ли ячейка в окно
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// CellsIn возвращает диапазон ячеек, центры которых лежат строго внутри области.
// Клик по любой такой ячейке попадает в область.
func (v Viewport) CellsIn(r geometry.Rect) (col0, row0, col1, row1 int, ok bool) {
	col0, col1, okCols := span(r.Left, r.Right, v.Cols, v.CellWidth)
	row0, row1, okRows := span(r.Top, r.Bottom, v.Rows, v.CellHeight)
	return col0, row0, col1, row1, okCols && okRows
}

// span находит первую и последнюю ячейку, центр которой лежит в интервале (lo, hi)
func span(lo, hi float64, n int, size float64) (first, last int, ok bool) {
	first, last = -1, -1
	for i := 0; i < n; i++ {
		c := (float64(i) + 0.5) * size
		if c > lo && c < hi {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last, first >= 0
}

// Metrics измеряет текст в пикселях: каждая колонка терминала занимает CellWidth пикселей
type Metrics struct {
	viewport Viewport
}

// NewMetrics создает метрики шрифта для сетки
func NewMetrics(v Viewport) Metrics {
	return Metrics{viewport: v}
}

// TextWidth возвращает ширину текста в пикселях
func (m Metrics) TextWidth(text string) float64 {
	return float64(runewidth.StringWidth(text)) * m.viewport.CellWidth
}

// Height возвращает высоту строки текста в пикселях
func (m Metrics) Height() float64 {
	return m.viewport.CellHeight
}
