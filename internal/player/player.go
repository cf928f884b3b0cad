// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/streaming"
)

const (
	// sampleRate - частота, на которой работают динамики; треки с другой частотой пересэмплируются
	sampleRate = beep.SampleRate(44100)
	// bufferSize - размер буфера потокового чтения
	bufferSize = 256 * 1024
)

// ErrNoResolver возвращается при попытке воспроизвести s3:// без настроенного доступа к S3
var ErrNoResolver = errors.New("доступ к S3 не настроен")

// Resolver превращает расположение s3://bucket/key в URL для скачивания
type Resolver interface {
	Resolve(location string) (string, error)
}

// Status представляет текущий статус плеера
type Status struct {
	Current  time.Duration // Текущая позиция
	Total    time.Duration // Общая продолжительность
	Paused   bool
	Finished bool
}

// Option настраивает плеер
type Option func(*Player)

// WithResolver задает резолвер для треков в S3
func WithResolver(r Resolver) Option {
	return func(p *Player) {
		p.resolver = r
	}
}

// WithLogger задает логгер плеера
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		p.logger = l
	}
}

// Player управляет воспроизведением треков
type Player struct {
	ctx    context.Context
	cancel context.CancelFunc

	mutex         sync.RWMutex
	isInitialized bool
	isPaused      bool
	currentTrack  *catalog.Track

	// Компоненты для воспроизведения
	source   io.Closer
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	// Флаг окончания выставляется из горутины динамиков, поэтому он атомарный.
	// Номер поколения отсекает колбэки от уже остановленных треков.
	finished   atomic.Bool
	generation atomic.Uint64

	resolver Resolver
	logger   *slog.Logger
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer(opts ...Option) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Player{
		ctx:    ctx,
		cancel: cancel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play начинает воспроизведение трека и сразу возвращает управление
func (p *Player) Play(track catalog.Track) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Останавливаем текущее воспроизведение, если есть
	p.stopInternal()

	gen := p.generation.Add(1)
	p.finished.Store(false)

	source, err := p.open(track.Location)
	if err != nil {
		return fmt.Errorf("ошибка открытия трека %q: %w", track.Location, err)
	}

	streamer, format, err := decoderFor(track.Location)(source)
	if err != nil {
		source.Close()
		return fmt.Errorf("ошибка декодирования %q: %w", track.Location, err)
	}

	// Инициализируем speaker (только один раз)
	if !p.isInitialized {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/5)); err != nil {
			streamer.Close()
			source.Close()
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.isInitialized = true
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		stream = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	p.source = source
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: stream}
	p.isPaused = false

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		p.markFinished(gen)
	})))
	p.currentTrack = &track

	p.logger.Debug("запущено воспроизведение", "location", track.Location, "sample_rate", int(format.SampleRate))
	return nil
}

// markFinished отмечает трек поколения gen доигравшим.
// Колбэки остановленных или замененных треков игнорируются.
func (p *Player) markFinished(gen uint64) {
	if p.generation.Load() == gen {
		p.finished.Store(true)
	}
}

// Pause приостанавливает или возобновляет воспроизведение
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = !p.isPaused
		p.ctrl.Paused = p.isPaused
		speaker.Unlock()
	}
}

// Stop останавливает воспроизведение
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Player) stopInternal() {
	p.generation.Add(1)

	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	if p.source != nil {
		p.source.Close()
		p.source = nil
	}

	p.currentTrack = nil
	p.isPaused = false
	p.finished.Store(false)
}

// Close закрывает плеер и освобождает ресурсы
func (p *Player) Close() error {
	p.cancel()
	p.Stop()
	return nil
}

// Finished сообщает, что запущенный трек доиграл до конца
func (p *Player) Finished() bool {
	return p.finished.Load()
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.ctrl != nil && !p.isPaused && !p.finished.Load()
}

// CurrentTrack возвращает информацию о текущем треке
func (p *Player) CurrentTrack() *catalog.Track {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.currentTrack
}

// Status возвращает позицию и продолжительность текущего трека
func (p *Player) Status() Status {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	status := Status{
		Paused:   p.isPaused,
		Finished: p.finished.Load(),
	}
	if p.streamer == nil {
		return status
	}

	speaker.Lock()
	status.Current = p.format.SampleRate.D(p.streamer.Position())
	status.Total = p.format.SampleRate.D(p.streamer.Len())
	speaker.Unlock()

	return status
}

// open открывает источник данных трека: локальный файл, HTTP(S) или S3
func (p *Player) open(location string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		if p.resolver == nil {
			return nil, ErrNoResolver
		}
		resolved, err := p.resolver.Resolve(location)
		if err != nil {
			return nil, err
		}
		return p.openStream(location, resolved)

	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return p.openStream(location, location)

	default:
		return os.Open(location)
	}
}

// openStream открывает сетевой поток; в журнал попадает исходное расположение,
// а не подписанная ссылка
func (p *Player) openStream(location, streamURL string) (io.ReadCloser, error) {
	reader, err := streaming.NewReader(p.ctx, streamURL, bufferSize)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("открыт сетевой поток", "location", location, "content_type", reader.ContentType())
	return reader, nil
}

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor выбирает декодер по расширению; по умолчанию используется MP3
func decoderFor(location string) decodeFunc {
	switch formatOf(location) {
	case ".wav":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}
	default:
		return mp3.Decode
	}
}

// formatOf возвращает расширение файла трека в нижнем регистре
func formatOf(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	return strings.ToLower(path.Ext(p))
}
