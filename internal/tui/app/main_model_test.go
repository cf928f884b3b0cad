package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/playback"
	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/render"
)

type fakeAudio struct {
	played   []string
	stops    int
	pauses   int
	finished bool
	status   player.Status
}

func (f *fakeAudio) Play(track catalog.Track) error {
	f.played = append(f.played, track.Name)
	f.finished = false
	return nil
}

func (f *fakeAudio) Stop()                 { f.stops++ }
func (f *fakeAudio) Finished() bool        { return f.finished }
func (f *fakeAudio) Pause()                { f.pauses++ }
func (f *fakeAudio) Status() player.Status { return f.status }

func testCatalog() *catalog.Catalog {
	metrics := render.NewMetrics(render.DefaultViewport())
	names := []string{"one", "two"}
	tracks := make([]catalog.Track, len(names))
	for i, name := range names {
		tracks[i] = catalog.Track{
			Name:     name,
			Location: name + ".mp3",
			Region:   catalog.TrackRegion(i, name, metrics),
		}
	}

	return &catalog.Catalog{Albums: []catalog.Album{{
		Title:  "Moon Safari",
		Artist: "Air",
		Region: catalog.CoverRegion(0, 190, 190),
		Tracks: tracks,
	}}}
}

func newTestModel(audio *fakeAudio) *MainModel {
	cat := testCatalog()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	machine := playback.NewMachine(cat, audio, logger)
	renderer := render.NewRenderer(render.DefaultViewport())
	return NewMainModel(cat, machine, audio, renderer, 100*time.Millisecond)
}

func leftClick(col, row int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      col,
		Y:      row,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	}
}

func TestMainModel_Init(t *testing.T) {
	m := newTestModel(&fakeAudio{})
	assert.NotNil(t, m.Init(), "Init должен запускать цикл тиков")
}

func TestMainModel_ClickCoverThenTick(t *testing.T) {
	audio := &fakeAudio{}
	m := newTestModel(audio)

	// Клетка (10, 2) соответствует пикселю (105, 62.5) внутри первой обложки
	_, cmd := m.Update(leftClick(10, 2))
	assert.Nil(t, cmd)
	assert.Equal(t, playback.StateAlbumSelectedLoading, m.machine.State())
	assert.Empty(t, audio.played)

	_, cmd = m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "тик должен планировать следующий тик")
	assert.Equal(t, []string{"one"}, audio.played)
	assert.Equal(t, playback.StatePlaying, m.machine.State())

	audio.finished = true
	m.Update(tickMsg(time.Now()))
	assert.Equal(t, []string{"one", "two"}, audio.played)
}

func TestMainModel_ClickTrack(t *testing.T) {
	audio := &fakeAudio{}
	m := newTestModel(audio)

	m.Update(leftClick(10, 2))
	m.Update(tickMsg(time.Now()))

	// Клетка (50, 3) - пиксель (505, 87.5) внутри подписи второго трека
	m.Update(leftClick(50, 3))
	assert.Equal(t, []string{"one", "two"}, audio.played)

	_, track := m.machine.Selection()
	i, ok := track.Get()
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestMainModel_IgnoredMouseEvents(t *testing.T) {
	audio := &fakeAudio{}
	m := newTestModel(audio)

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"правая кнопка", tea.MouseMsg{X: 10, Y: 2, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}},
		{"отпускание", tea.MouseMsg{X: 10, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}},
		{"строка статуса", leftClick(10, 24)},
		{"за правым краем", leftClick(95, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Update(tt.msg)
			assert.Equal(t, playback.StateIdle, m.machine.State())
		})
	}
}

func TestMainModel_Keys(t *testing.T) {
	audio := &fakeAudio{}
	m := newTestModel(audio)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 1, audio.pauses)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, audio.stops)
	assert.Empty(t, m.View(), "после выхода окно не отображается")
}

func TestMainModel_View(t *testing.T) {
	audio := &fakeAudio{status: player.Status{Current: 30 * time.Second, Total: 2 * time.Minute}}
	m := newTestModel(audio)

	assert.Contains(t, m.View(), "Выберите альбом")

	m.Update(leftClick(10, 2))
	assert.Contains(t, m.View(), "Загрузка")

	m.Update(tickMsg(time.Now()))
	view := m.View()
	assert.Contains(t, view, "Moon Safari")
	assert.Contains(t, view, "Air")
	assert.Contains(t, view, "00:30 / 02:00")
	assert.Contains(t, view, "выход")
}
