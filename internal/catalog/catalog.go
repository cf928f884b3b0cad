// Package catalog содержит модель каталога альбомов и загрузчик каталога из текстового файла
package catalog

import (
	"image"

	"github.com/hazadus/go-jukebox/internal/geometry"
)

// Track представляет трек альбома и область его подписи на экране
type Track struct {
	Name     string
	Location string        // Путь к файлу или URL (http, https, s3)
	Region   geometry.Rect // Область подписи трека для кликов
}

// Album представляет альбом с обложкой и упорядоченным списком треков
type Album struct {
	Title     string
	Artist    string
	CoverPath string
	Cover     image.Image
	Region    geometry.Rect // Область обложки для кликов
	Tracks    []Track       // Порядок треков задает порядок воспроизведения
}

// Catalog хранит все альбомы в порядке их следования во входном файле
type Catalog struct {
	Albums []Album
}

// Len возвращает количество альбомов
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Albums)
}

// Album возвращает альбом по индексу
func (c *Catalog) Album(i int) (*Album, bool) {
	if i < 0 || i >= c.Len() {
		return nil, false
	}
	return &c.Albums[i], true
}

// Track возвращает трек альбома по индексу
func (a *Album) Track(i int) (*Track, bool) {
	if a == nil || i < 0 || i >= len(a.Tracks) {
		return nil, false
	}
	return &a.Tracks[i], true
}
