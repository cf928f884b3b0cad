package catalog

import "fmt"

// FormatError описывает нарушение формата файла каталога
type FormatError struct {
	Line  int    // Номер строки, начиная с 1
	Field string // Какое поле ожидалось
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ошибка формата каталога в строке %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// CoverError описывает ошибку загрузки обложки альбома
type CoverError struct {
	Album int // Индекс альбома
	Path  string
	Err   error
}

func (e *CoverError) Error() string {
	return fmt.Sprintf("ошибка загрузки обложки альбома %d (%s): %v", e.Album, e.Path, e.Err)
}

func (e *CoverError) Unwrap() error {
	return e.Err
}
