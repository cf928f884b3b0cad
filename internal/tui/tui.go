// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/playback"
	"github.com/hazadus/go-jukebox/internal/render"
	"github.com/hazadus/go-jukebox/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	catalog      *catalog.Catalog
	audio        app.Audio
	tickInterval time.Duration
	logger       *slog.Logger
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(cat *catalog.Catalog, audio app.Audio, tickInterval time.Duration, logger *slog.Logger) *App {
	return &App{
		catalog:      cat,
		audio:        audio,
		tickInterval: tickInterval,
		logger:       logger,
	}
}

// Model собирает главную модель окна
func (tuiApp *App) Model() *app.MainModel {
	machine := playback.NewMachine(tuiApp.catalog, tuiApp.audio, tuiApp.logger)
	renderer := render.NewRenderer(render.DefaultViewport())
	return app.NewMainModel(tuiApp.catalog, machine, tuiApp.audio, renderer, tuiApp.tickInterval)
}

// Run запускает TUI приложение и блокируется до выхода или отмены контекста
func (tuiApp *App) Run(ctx context.Context) error {
	p := tea.NewProgram(tuiApp.Model(),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	// Останавливаем воспроизведение после завершения программы
	tuiApp.audio.Stop()

	return err
}
