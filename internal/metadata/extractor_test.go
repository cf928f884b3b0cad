package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFromNoMetadataFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "Artist - Title.mp3")

	// Создаем файл с именем в формате "Artist - Title"
	if err := os.WriteFile(testFilePath, []byte("fake content"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	extractor := NewExtractor()
	info := extractor.ExtractFromFile(testFilePath)

	if info.Artist != "Artist" {
		t.Errorf("Ожидался Artist: Artist, получено: %s", info.Artist)
	}
	if info.Title != "Title" {
		t.Errorf("Ожидался Title: Title, получено: %s", info.Title)
	}
}

func TestExtractFromCorruptedFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "Unknown - Track.mp3")

	corruptedContent := []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}
	if err := os.WriteFile(testFilePath, corruptedContent, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	extractor := NewExtractor()
	info := extractor.ExtractFromFile(testFilePath)

	if info.Artist != "Unknown" {
		t.Errorf("Ожидался Artist: Unknown, получено: %s", info.Artist)
	}
	if info.Title != "Track" {
		t.Errorf("Ожидался Title: Track, получено: %s", info.Title)
	}
}

func TestGetDefaultMetadata(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		source string
		artist string
		title  string
	}{
		{"/music/Neil Diamond - Sweet Caroline.mp3", "Neil Diamond", "Sweet Caroline"},
		{"sounds/A - B - C.wav", "A", "B - C"},
		{"sounds/01-Cracklin-rose.wav", "Unknown Artist", "01-Cracklin-rose"},
	}

	for _, test := range tests {
		info := extractor.getDefaultMetadata(test.source)
		if info.Artist != test.artist || info.Title != test.title {
			t.Errorf("getDefaultMetadata(%q) = %q/%q, ожидалось %q/%q",
				test.source, info.Artist, info.Title, test.artist, test.title)
		}
	}
}

func TestDescribeMissingFile(t *testing.T) {
	extractor := NewExtractor()
	info := extractor.Describe(filepath.Join(t.TempDir(), "Band - Song.mp3"))

	if info.Artist != "Band" || info.Title != "Song" {
		t.Errorf("Неожиданные метаданные: %+v", info)
	}
	if info.Duration != 0 {
		t.Errorf("Длительность отсутствующего файла должна быть нулевой, получено %v", info.Duration)
	}
}

func TestDescribeRemote(t *testing.T) {
	extractor := NewExtractor()
	info := extractor.Describe("https://example.com/music/Band%20-%20Song.mp3?X-Amz-Signature=abc")

	if info.Artist != "Band" || info.Title != "Song" {
		t.Errorf("Неожиданные метаданные: %+v", info)
	}
}

func TestGetDurationErrors(t *testing.T) {
	extractor := NewExtractor()

	if _, err := extractor.GetDuration(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("Ожидалась ошибка для отсутствующего файла")
	}

	broken := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(broken, []byte("not a wave"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	if _, err := extractor.GetDuration(broken); err == nil {
		t.Error("Ожидалась ошибка декодирования")
	}
}
