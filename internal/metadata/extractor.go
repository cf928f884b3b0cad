// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/hazadus/go-jukebox/internal/catalog"
)

// Info хранит метаданные трека
type Info struct {
	Artist   string
	Title    string
	Album    string
	Duration time.Duration // Ноль, если длительность неизвестна
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Describe возвращает метаданные трека по его расположению.
// Для сетевых треков используется только имя файла.
func (e *Extractor) Describe(location string) Info {
	if catalog.IsRemote(location) {
		return e.getDefaultMetadata(remoteName(location))
	}

	info := e.ExtractFromFile(location)
	if duration, err := e.GetDuration(location); err == nil {
		info.Duration = duration
	}
	return info
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) Info {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	info := Info{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}
	if info.Title == "" {
		fallback := e.getDefaultMetadata(source)
		info.Title = fallback.Title
		if info.Artist == "" {
			info.Artist = fallback.Artist
		}
	}
	return info
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) Info {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 или WAV файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if strings.EqualFold(filepath.Ext(filePath), ".wav") {
		streamer, format, err = wav.Decode(file)
	} else {
		streamer, format, err = mp3.Decode(file)
	}
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) Info {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return Info{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return Info{
		Artist: "Unknown Artist",
		Title:  nameWithoutExt,
	}
}

// remoteName возвращает путь из URL без параметров запроса
func remoteName(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	return path.Base(u.Path)
}
