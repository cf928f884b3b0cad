package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jukebox [catalog file]",
		Short: "A clickable album jukebox for the terminal",
		Long:  `Show album covers from a catalog file and play the tracks of the clicked album in sequence.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runJukebox(ctx, args)
		},
	}

	// Ошибки каталога не связаны с использованием команды
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(app.createAlbumsCommand())

	return rootCmd
}
