package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-jukebox/internal/artwork"
	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/config"
	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/render"
	"github.com/hazadus/go-jukebox/internal/s3"
)

const (
	defaultConfigPath = "~/.jukebox.yaml"
)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config *config.Config
	Logger *slog.Logger

	logFile io.Closer
}

// NewApplication создает приложение с указанной конфигурацией.
// Журнал пишется в Config.LogFile, если файл задан.
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if cfg.LogFile != "" {
		// Терминал занят окном TUI, поэтому журнал пишется в файл
		f, err := tea.LogToFile(cfg.LogFile, "jukebox")
		if err != nil {
			return nil, fmt.Errorf("ошибка открытия файла журнала: %w", err)
		}
		app.logFile = f
		app.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return app, nil
}

// Close освобождает ресурсы приложения
func (app *Application) Close() error {
	if app.logFile != nil {
		return app.logFile.Close()
	}
	return nil
}

// loadCatalog загружает каталог по пути из аргумента или из конфигурации
func (app *Application) loadCatalog(args []string) (*catalog.Catalog, error) {
	path := app.Config.CatalogPath
	if len(args) > 0 {
		path = args[0]
	}

	cat, err := catalog.LoadFile(path, catalog.LoadOptions{
		LoadCover: artwork.Load,
		Metrics:   render.NewMetrics(render.DefaultViewport()),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки каталога %s: %w", path, err)
	}

	app.Logger.Info("каталог загружен", "path", path, "albums", cat.Len())
	return cat, nil
}

// newPlayer создает плеер; треки из S3 доступны, только если заданы ключи доступа
func (app *Application) newPlayer() (*player.Player, error) {
	opts := []player.Option{player.WithLogger(app.Logger)}

	if app.Config.HasS3() {
		resolver, err := s3.NewResolver(&s3.Config{
			Region:    app.Config.AwsRegion,
			AccessKey: app.Config.AwsAccessKey,
			SecretKey: app.Config.AwsSecretKey,
			Endpoint:  app.Config.AwsEndpoint,
			Expiry:    app.Config.PresignExpiry,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, player.WithResolver(resolver))
	}

	return player.NewPlayer(opts...), nil
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = app.createRootCommand(ctx).ExecuteContext(ctx)
	stop()
	app.Close()

	if err != nil {
		os.Exit(1)
	}
}
