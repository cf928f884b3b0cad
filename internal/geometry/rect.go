// Package geometry содержит примитивы для проверки попадания курсора в области экрана
package geometry

// Rect описывает прямоугольную область в пиксельных координатах окна
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewRect создает прямоугольник, упорядочивая координаты так, чтобы Left <= Right и Top <= Bottom
func NewRect(left, top, right, bottom float64) Rect {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Contains сообщает, лежит ли точка строго внутри прямоугольника.
// Точки на границе внутренними не считаются.
func (r Rect) Contains(x, y float64) bool {
	return x > r.Left && x < r.Right && y > r.Top && y < r.Bottom
}

// Width возвращает ширину прямоугольника
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height возвращает высоту прямоугольника
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}
