// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/playback"
	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/render"
	"github.com/hazadus/go-jukebox/internal/utils"
)

var (
	albumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff"))

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// Audio - сервис воспроизведения с управлением паузой и статусом
type Audio interface {
	playback.Audio
	Pause()
	Status() player.Status
}

// tickMsg отправляется на каждом шаге обновления
type tickMsg time.Time

// MainModel представляет окно плеера: обложки, треки выбранного альбома и строку статуса
type MainModel struct {
	catalog  *catalog.Catalog
	machine  *playback.Machine
	audio    Audio
	renderer *render.Renderer
	viewport render.Viewport

	tickInterval time.Duration
	progressBar  progress.Model
	help         help.Model
	keys         keyMap
	quitting     bool
}

// NewMainModel создает новую главную модель
func NewMainModel(cat *catalog.Catalog, machine *playback.Machine, audio Audio, renderer *render.Renderer, tickInterval time.Duration) *MainModel {
	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 30

	return &MainModel{
		catalog:      cat,
		machine:      machine,
		audio:        audio,
		renderer:     renderer,
		viewport:     renderer.Viewport(),
		tickInterval: tickInterval,
		progressBar:  prog,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init запускает цикл обновления
func (m *MainModel) Init() tea.Cmd {
	return m.tick()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.machine.Tick()
		return m, m.tick()

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		// Клики вне окна 800x600 (например, по строке статуса) игнорируются
		if !m.viewport.InBounds(msg.X, msg.Y) {
			return m, nil
		}
		x, y := m.viewport.PixelAt(msg.X, msg.Y)
		m.machine.HandleClick(x, y)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Останавливаем плеер перед выходом
			m.audio.Stop()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.audio.Pause()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	album, track := m.machine.Selection()
	return strings.Join([]string{
		m.renderer.Draw(m.catalog, album, track),
		m.statusLine(),
		m.help.View(m.keys),
	}, "\n")
}

// statusLine описывает выбранный альбом и прогресс текущего трека
func (m *MainModel) statusLine() string {
	album, ok := m.machine.CurrentAlbum()
	if !ok {
		return trackInfoStyle.Render("Выберите альбом щелчком по обложке")
	}

	header := albumStyle.Render(fmt.Sprintf("💿 %s · %s", album.Title, album.Artist))

	if m.machine.Stalled() {
		return header + "  " + errorStyle.Render("Не удалось воспроизвести ни один трек альбома")
	}

	track, ok := m.machine.CurrentTrack()
	if !ok {
		return header + "  " + trackInfoStyle.Render("Загрузка...")
	}

	status := m.audio.Status()
	icon := "▶️"
	switch {
	case !m.machine.IsPlaying():
		icon = "⏹️"
	case status.Paused:
		icon = "⏸️"
	}

	var percent float64
	if status.Total > 0 {
		percent = float64(status.Current) / float64(status.Total)
	}

	return fmt.Sprintf("%s  %s %s  %s %s / %s",
		header,
		icon,
		trackInfoStyle.Render(utils.TruncateString(track.Name, 30)),
		m.progressBar.ViewAs(percent),
		utils.FormatDuration(status.Current),
		utils.FormatDuration(status.Total),
	)
}

// tick планирует следующий шаг обновления
func (m *MainModel) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
