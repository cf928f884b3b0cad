package render

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hazadus/go-jukebox/internal/artwork"
	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/playback"
)

var (
	// Цвета градиента фона: слева зеленый, справа синий
	topColor    = colorful.Color{R: 0, G: 1, B: 0}
	bottomColor = colorful.Color{R: 0, G: 0, B: 1}

	trackColor     = colorful.Color{R: 0, G: 0, B: 0}
	indicatorColor = colorful.Color{R: 1, G: 0, B: 0}
	noCoverColor   = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
)

// Renderer рисует фон, обложки, подписи треков и индикатор текущего трека
type Renderer struct {
	viewport Viewport
	covers   map[int]*image.RGBA // Уменьшенные обложки по индексу альбома
}

// NewRenderer создает новый рендерер для сетки
func NewRenderer(v Viewport) *Renderer {
	return &Renderer{
		viewport: v,
		covers:   make(map[int]*image.RGBA),
	}
}

// Viewport возвращает сетку рендерера
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Draw отрисовывает окно в строку для терминала
func (r *Renderer) Draw(cat *catalog.Catalog, album, track playback.Index) string {
	return r.Paint(cat, album, track).String()
}

// Paint отрисовывает окно на холст
func (r *Renderer) Paint(cat *catalog.Catalog, album, track playback.Index) *Canvas {
	canvas := NewCanvas(r.viewport.Cols, r.viewport.Rows)

	r.drawBackground(canvas)
	for i := 0; i < cat.Len(); i++ {
		r.drawCover(canvas, i, &cat.Albums[i])
	}

	// Подписи треков видны только у выбранного альбома
	idx, ok := album.Get()
	if !ok {
		return canvas
	}
	selected, ok := cat.Album(idx)
	if !ok {
		return canvas
	}
	for i := range selected.Tracks {
		r.drawTrack(canvas, &selected.Tracks[i])
	}
	if t, ok := track.Get(); ok {
		if current, ok := selected.Track(t); ok {
			r.drawIndicator(canvas, current)
		}
	}

	return canvas
}

func (r *Renderer) drawBackground(canvas *Canvas) {
	for col := 0; col < r.viewport.Cols; col++ {
		t := (float64(col) + 0.5) / float64(r.viewport.Cols)
		bg := topColor.BlendRgb(bottomColor, t)
		for row := 0; row < r.viewport.Rows; row++ {
			canvas.SetBg(col, row, bg)
		}
	}
}

func (r *Renderer) drawCover(canvas *Canvas, idx int, album *catalog.Album) {
	col0, row0, col1, row1, ok := r.viewport.CellsIn(album.Region)
	if !ok {
		return
	}

	if album.Cover == nil {
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				canvas.SetBg(col, row, noCoverColor)
			}
		}
		return
	}

	small, ok := r.covers[idx]
	if !ok {
		small = artwork.Downscale(album.Cover, col1-col0+1, row1-row0+1)
		r.covers[idx] = small
	}

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c, ok := colorful.MakeColor(small.RGBAAt(col-col0, row-row0))
			if !ok {
				continue
			}
			canvas.SetBg(col, row, c)
		}
	}
}

// drawTrack пишет название трека с первой кликабельной ячейки его области
func (r *Renderer) drawTrack(canvas *Canvas, track *catalog.Track) {
	col0, row0, _, _, ok := r.viewport.CellsIn(track.Region)
	if !ok {
		return
	}
	canvas.Text(col0, row0, track.Name, trackColor)
}

// drawIndicator рисует красную полосу в ячейке слева от подписи текущего трека
func (r *Renderer) drawIndicator(canvas *Canvas, track *catalog.Track) {
	col0, row0, _, _, ok := r.viewport.CellsIn(track.Region)
	if !ok {
		return
	}
	canvas.Fill(col0-1, row0, "▌", indicatorColor, indicatorColor)
}
