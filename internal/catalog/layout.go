package catalog

import "github.com/hazadus/go-jukebox/internal/geometry"

// Константы раскладки в пикселях окна 800x600
const (
	// EvenCoverX - левая граница обложек с четным индексом
	EvenCoverX = 30
	// OddCoverX - левая граница обложек с нечетным индексом
	OddCoverX = 250
	// CoverRowHeight - высота ряда обложек
	CoverRowHeight = 190
	// CoverRowGap - промежуток между рядами обложек
	CoverRowGap = 30

	// TrackX - левая граница подписей треков
	TrackX = 500
	// TrackStep - шаг подписей треков по вертикали
	TrackStep = 50
	// TrackTop - отступ первой подписи от верха окна
	TrackTop = 30
)

// FontMetrics измеряет текст шрифтом, которым рисуются подписи треков
type FontMetrics interface {
	TextWidth(text string) float64
	Height() float64
}

// CoverOrigin возвращает левый верхний угол обложки альбома с индексом i.
// Обложки идут по две в ряд.
func CoverOrigin(i int) (leftX, topY float64) {
	leftX = OddCoverX
	if i%2 == 0 {
		leftX = EvenCoverX
	}
	row := i / 2
	return leftX, float64(CoverRowHeight*row + CoverRowGap*row)
}

// CoverRegion возвращает область обложки с учетом ее натуральных размеров
func CoverRegion(i, width, height int) geometry.Rect {
	left, top := CoverOrigin(i)
	return geometry.NewRect(left, top, left+float64(width), top+float64(height))
}

// TrackRegion возвращает область подписи трека с индексом idx
func TrackRegion(idx int, name string, metrics FontMetrics) geometry.Rect {
	left := float64(TrackX)
	top := float64(TrackStep*idx + TrackTop)
	return geometry.NewRect(left, top, left+metrics.TextWidth(name), top+metrics.Height())
}
