package main

import (
	"context"

	"github.com/hazadus/go-jukebox/internal/tui"
)

// runJukebox загружает каталог и запускает окно плеера
func (app *Application) runJukebox(ctx context.Context, args []string) error {
	cat, err := app.loadCatalog(args)
	if err != nil {
		return err
	}

	p, err := app.newPlayer()
	if err != nil {
		return err
	}
	defer p.Close()

	tuiApp := tui.NewApp(cat, p, app.Config.TickInterval, app.Logger)
	return tuiApp.Run(ctx)
}
