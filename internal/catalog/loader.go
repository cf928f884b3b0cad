package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnexpectedEOF возвращается, если файл закончился раньше, чем ожидалось
	ErrUnexpectedEOF = errors.New("неожиданный конец файла")
	// ErrInvalidCount возвращается, если количество не является положительным целым числом
	ErrInvalidCount = errors.New("количество должно быть положительным целым числом")
)

// LoadOptions задает зависимости загрузчика каталога
type LoadOptions struct {
	// LoadCover загружает изображение обложки по пути из файла
	LoadCover func(path string) (image.Image, error)
	// Metrics измеряет подписи треков для вычисления их областей
	Metrics FontMetrics
	// BaseDir - каталог, относительно которого разрешаются относительные пути.
	// Пустое значение оставляет пути как есть.
	BaseDir string
}

// LoadFile загружает каталог из файла. Относительные пути обложек и локальных
// треков разрешаются относительно каталога, в котором лежит файл.
func LoadFile(filePath string, opts LoadOptions) (*Catalog, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла каталога: %w", err)
	}
	defer file.Close()

	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(filePath)
	}
	return Parse(file, opts)
}

// Parse разбирает каталог в построчном формате:
//
//	<количество альбомов>
//	<название> <исполнитель> <путь к обложке> <количество треков>
//	<название трека> <расположение трека> (для каждого трека)
//
// Каждое поле занимает отдельную строку.
func Parse(r io.Reader, opts LoadOptions) (*Catalog, error) {
	if opts.LoadCover == nil {
		return nil, errors.New("не задан загрузчик обложек")
	}
	if opts.Metrics == nil {
		return nil, errors.New("не заданы метрики шрифта")
	}

	lr := newLineReader(r)

	albumCount, err := lr.count("количество альбомов")
	if err != nil {
		return nil, err
	}

	// Количество из файла не используется для выделения памяти: файл может оказаться короче
	var albums []Album
	for i := 0; i < albumCount; i++ {
		album, err := readAlbum(lr, i, opts)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	return &Catalog{Albums: albums}, nil
}

// readAlbum читает один альбом вместе с треками
func readAlbum(lr *lineReader, idx int, opts LoadOptions) (Album, error) {
	title, err := lr.next("название альбома")
	if err != nil {
		return Album{}, err
	}
	artist, err := lr.next("исполнитель")
	if err != nil {
		return Album{}, err
	}
	coverPath, err := lr.next("путь к обложке")
	if err != nil {
		return Album{}, err
	}
	coverPath = resolvePath(opts.BaseDir, coverPath)

	cover, err := opts.LoadCover(coverPath)
	if err != nil {
		return Album{}, &CoverError{Album: idx, Path: coverPath, Err: err}
	}
	bounds := cover.Bounds()

	trackCount, err := lr.count("количество треков")
	if err != nil {
		return Album{}, err
	}

	var tracks []Track
	for i := 0; i < trackCount; i++ {
		name, err := lr.next("название трека")
		if err != nil {
			return Album{}, err
		}
		location, err := lr.next("расположение трека")
		if err != nil {
			return Album{}, err
		}
		tracks = append(tracks, Track{
			Name:     name,
			Location: resolvePath(opts.BaseDir, location),
			Region:   TrackRegion(i, name, opts.Metrics),
		})
	}

	return Album{
		Title:     title,
		Artist:    artist,
		CoverPath: coverPath,
		Cover:     cover,
		Region:    CoverRegion(idx, bounds.Dx(), bounds.Dy()),
		Tracks:    tracks,
	}, nil
}

// IsRemote сообщает, указывает ли расположение на сетевой ресурс
func IsRemote(location string) bool {
	for _, prefix := range []string{"http://", "https://", "s3://"} {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}
	return false
}

// resolvePath разрешает относительный локальный путь относительно baseDir
func resolvePath(baseDir, location string) string {
	if baseDir == "" || location == "" || IsRemote(location) || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(baseDir, location)
}

// lineReader читает файл построчно и помнит номер текущей строки
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{scanner: scanner}
}

// next возвращает следующую строку без завершающего перевода строки
func (lr *lineReader) next(field string) (string, error) {
	lr.line++
	if !lr.scanner.Scan() {
		err := lr.scanner.Err()
		if err == nil {
			err = ErrUnexpectedEOF
		}
		return "", &FormatError{Line: lr.line, Field: field, Err: err}
	}
	return strings.TrimRight(lr.scanner.Text(), "\r"), nil
}

// count читает строку с положительным целым числом
func (lr *lineReader) count(field string) (int, error) {
	text, err := lr.next(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &FormatError{Line: lr.line, Field: field, Err: fmt.Errorf("%w: %q", ErrInvalidCount, text)}
	}
	if n <= 0 {
		return 0, &FormatError{Line: lr.line, Field: field, Err: fmt.Errorf("%w: %d", ErrInvalidCount, n)}
	}
	return n, nil
}
