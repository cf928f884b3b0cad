package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell - одна ячейка холста
type Cell struct {
	Ch    string // Пустая строка - продолжение широкого символа слева
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
}

// Canvas - прямоугольная сетка ячеек
type Canvas struct {
	cols  int
	rows  int
	cells []Cell
}

// NewCanvas создает холст из пробелов
func NewCanvas(cols, rows int) *Canvas {
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i].Ch = " "
	}
	return &Canvas{cols: cols, rows: rows, cells: cells}
}

// At возвращает ячейку холста
func (c *Canvas) At(col, row int) (Cell, bool) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{}, false
	}
	return c.cells[row*c.cols+col], true
}

// SetBg задает цвет фона ячейки
func (c *Canvas) SetBg(col, row int, bg colorful.Color) {
	if cell := c.cell(col, row); cell != nil {
		cell.Bg = bg
	}
}

// Fill закрашивает ячейку символом и цветами
func (c *Canvas) Fill(col, row int, ch string, fg, bg colorful.Color) {
	if cell := c.cell(col, row); cell != nil {
		cell.Ch = ch
		cell.Fg = fg
		cell.HasFg = true
		cell.Bg = bg
	}
}

// Text пишет текст начиная с ячейки, не меняя фон. Текст обрезается по краю холста.
func (c *Canvas) Text(col, row int, text string, fg colorful.Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.cols {
			return
		}
		if cell := c.cell(col, row); cell != nil {
			cell.Ch = string(r)
			cell.Fg = fg
			cell.HasFg = true
		}
		for i := 1; i < w; i++ {
			if cell := c.cell(col+i, row); cell != nil {
				cell.Ch = ""
			}
		}
		col += w
	}
}

// String отрисовывает холст, объединяя соседние ячейки с одинаковыми цветами
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}

		var run strings.Builder
		var style Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyle(style).Render(run.String()))
			run.Reset()
		}

		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if col > 0 && !sameStyle(cell, style) {
				flush()
			}
			style = cell
			run.WriteString(cell.Ch)
		}
		flush()
	}
	return b.String()
}

func (c *Canvas) cell(col, row int) *Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func sameStyle(a, b Cell) bool {
	return a.Bg.Hex() == b.Bg.Hex() && a.HasFg == b.HasFg && (!a.HasFg || a.Fg.Hex() == b.Fg.Hex())
}

func cellStyle(cell Cell) lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(cell.Bg.Hex()))
	if cell.HasFg {
		style = style.Foreground(lipgloss.Color(cell.Fg.Hex()))
	}
	return style
}
