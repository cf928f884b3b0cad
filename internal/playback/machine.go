// Package playback содержит автомат выбора альбома и последовательного воспроизведения треков
package playback

import (
	"log/slog"

	"github.com/hazadus/go-jukebox/internal/catalog"
)

// Audio - сервис воспроизведения, которым управляет автомат.
// Play не блокирует: трек играет в фоне, а автомат лишь опрашивает Finished.
type Audio interface {
	Play(track catalog.Track) error
	Stop()
	Finished() bool
}

// Machine связывает клики мыши, тики обновления и воспроизведение треков.
// Все методы вызываются из одного потока цикла событий.
type Machine struct {
	catalog *catalog.Catalog
	audio   Audio
	logger  *slog.Logger

	album     Index
	track     Index
	isPlaying bool

	loaded   bool // Для выбранного альбома уже запрашивалось воспроизведение
	failed   bool // Последний запуск трека завершился ошибкой
	failures int  // Подряд идущие ошибки запуска в текущем альбоме
	stalled  bool // Все треки альбома не запустились, ждем действия пользователя
}

// NewMachine создает автомат в состоянии "ничего не выбрано"
func NewMachine(cat *catalog.Catalog, audio Audio, logger *slog.Logger) *Machine {
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		catalog: cat,
		audio:   audio,
		logger:  logger,
	}
}

// HandleClick обрабатывает клик в пиксельных координатах окна.
// Сначала проверяются подписи треков выбранного альбома, затем обложки альбомов.
// Обе проверки выполняются всегда, при совпадении побеждает первый элемент по порядку.
func (m *Machine) HandleClick(x, y float64) {
	if m.catalog.Len() == 0 {
		return
	}

	if album, ok := m.currentAlbum(); ok {
		for i := range album.Tracks {
			if album.Tracks[i].Region.Contains(x, y) {
				m.logger.Debug("выбран трек кликом", "album", m.album.value, "track", i)
				m.failures = 0
				m.stalled = false
				m.start(i)
				break
			}
		}
	}

	for i := range m.catalog.Albums {
		if m.catalog.Albums[i].Region.Contains(x, y) {
			m.logger.Debug("выбран альбом", "album", i, "title", m.catalog.Albums[i].Title)
			m.selectAlbum(i)
			break
		}
	}
}

// Tick выполняет шаг обновления: запускает первый трек только что выбранного
// альбома или переключает на следующий трек, когда текущий доиграл.
func (m *Machine) Tick() {
	album, ok := m.currentAlbum()
	if !ok || len(album.Tracks) == 0 {
		return
	}

	if !m.loaded {
		m.start(0)
		return
	}

	if m.stalled || !m.trackFinished() {
		return
	}

	current, _ := m.track.Get()
	m.start((current + 1) % len(album.Tracks))
}

// Selection возвращает выбранные альбом и трек
func (m *Machine) Selection() (album, track Index) {
	return m.album, m.track
}

// State возвращает текущее состояние автомата
func (m *Machine) State() State {
	switch {
	case !m.album.IsSet():
		return StateIdle
	case !m.loaded:
		return StateAlbumSelectedLoading
	case m.trackFinished():
		return StateFinishedPendingAdvance
	default:
		return StatePlaying
	}
}

// IsPlaying сообщает, запущен ли выбранный трек
func (m *Machine) IsPlaying() bool {
	return m.isPlaying && !m.trackFinished()
}

// Stalled сообщает, что ни один трек альбома не удалось запустить
func (m *Machine) Stalled() bool {
	return m.stalled
}

// CurrentAlbum возвращает выбранный альбом
func (m *Machine) CurrentAlbum() (*catalog.Album, bool) {
	return m.currentAlbum()
}

// CurrentTrack возвращает выбранный трек
func (m *Machine) CurrentTrack() (*catalog.Track, bool) {
	album, ok := m.currentAlbum()
	if !ok {
		return nil, false
	}
	i, ok := m.track.Get()
	if !ok {
		return nil, false
	}
	return album.Track(i)
}

func (m *Machine) currentAlbum() (*catalog.Album, bool) {
	i, ok := m.album.Get()
	if !ok {
		return nil, false
	}
	return m.catalog.Album(i)
}

// selectAlbum выбирает альбом и сбрасывает воспроизведение.
// Первый трек запустится на следующем тике.
func (m *Machine) selectAlbum(i int) {
	if m.loaded {
		m.audio.Stop()
	}
	m.album = Some(i)
	m.track = None()
	m.isPlaying = false
	m.loaded = false
	m.failed = false
	m.failures = 0
	m.stalled = false
}

// start выбирает трек и запускает его воспроизведение
func (m *Machine) start(i int) {
	album, _ := m.currentAlbum()
	track := album.Tracks[i]

	m.track = Some(i)
	m.loaded = true

	if err := m.audio.Play(track); err != nil {
		m.isPlaying = false
		m.failed = true
		m.failures++
		m.logger.Error("ошибка запуска трека",
			"album", album.Title, "track", track.Name, "location", track.Location, "error", err)

		if m.failures >= len(album.Tracks) {
			m.stalled = true
			m.logger.Warn("не удалось запустить ни один трек альбома", "album", album.Title)
		}
		return
	}

	m.isPlaying = true
	m.failed = false
	m.failures = 0
	m.logger.Info("воспроизведение трека", "album", album.Title, "track", track.Name)
}

// trackFinished сообщает, что загруженный трек доиграл или не запустился
func (m *Machine) trackFinished() bool {
	if !m.loaded {
		return false
	}
	return m.failed || m.audio.Finished()
}
