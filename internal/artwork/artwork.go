// Package artwork загружает обложки альбомов и готовит их для отрисовки в сетке ячеек
package artwork

import (
	"fmt"
	"image"
	_ "image/gif"  // Регистрация декодера GIF
	_ "image/jpeg" // Регистрация декодера JPEG
	_ "image/png"  // Регистрация декодера PNG
	"os"

	_ "golang.org/x/image/bmp" // Регистрация декодера BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Регистрация декодера WebP
)

// Load загружает изображение обложки. Натуральный размер изображения задает
// размер кликабельной области альбома.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия обложки: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования обложки: %w", err)
	}
	return img, nil
}

// Downscale уменьшает изображение до cols x rows пикселей, по одному на ячейку терминала
func Downscale(img image.Image, cols, rows int) *image.RGBA {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
