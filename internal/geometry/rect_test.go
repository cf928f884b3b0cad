package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	r := NewRect(30, 0, 220, 190)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"центр", 125, 95, true},
		{"почти левый верхний угол", 30.5, 0.5, true},
		{"почти правый нижний угол", 219.9, 189.9, true},
		{"левая граница", 30, 95, false},
		{"правая граница", 220, 95, false},
		{"верхняя граница", 125, 0, false},
		{"нижняя граница", 125, 190, false},
		{"угол", 30, 0, false},
		{"левее", 10, 95, false},
		{"ниже", 125, 300, false},
		{"отрицательные координаты", -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.x, tt.y))
		})
	}
}

func TestContainsDegenerate(t *testing.T) {
	// У прямоугольника нулевой ширины нет внутренних точек
	r := NewRect(500, 30, 500, 55)
	assert.False(t, r.Contains(500, 40))
}

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(220, 190, 30, 0)

	assert.Equal(t, Rect{Left: 30, Top: 0, Right: 220, Bottom: 190}, r)
	assert.Equal(t, 190.0, r.Width())
	assert.Equal(t, 190.0, r.Height())
}
