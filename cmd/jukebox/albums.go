package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-jukebox/internal/catalog"
	"github.com/hazadus/go-jukebox/internal/metadata"
	"github.com/hazadus/go-jukebox/internal/utils"
)

// createAlbumsCommand создает команду albums с привязкой к экземпляру приложения
func (app *Application) createAlbumsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "albums [catalog file]",
		Short: "List albums and tracks from the catalog",
		Long:  `Display every album of the catalog with its tracks, tags and durations.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.loadCatalog(args)
			if err != nil {
				return err
			}
			app.listAlbums(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

func (app *Application) listAlbums(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "📚 Найдено альбомов: %d\n", cat.Len())

	extractor := metadata.NewExtractor()

	for i, album := range cat.Albums {
		fmt.Fprintf(w, "\n💿 %d. %s · %s (%s)\n", i+1, album.Title, album.Artist, album.CoverPath)

		// Выводим заголовок таблицы
		fmt.Fprintf(w, "%-4s %-30s %-30s %-30s %-12s %-10s\n",
			"#", "Название", "Исполнитель (тег)", "Название (тег)", "Длительность", "Размер")
		fmt.Fprintln(w, strings.Repeat("-", 122))

		for j, track := range album.Tracks {
			info := extractor.Describe(track.Location)

			duration := "N/A"
			if info.Duration > 0 {
				duration = utils.FormatDuration(info.Duration)
			}

			fmt.Fprintf(w, "%-4d %-30s %-30s %-30s %-12s %-10s\n",
				j+1,
				utils.TruncateString(track.Name, 28),
				utils.TruncateString(info.Artist, 28),
				utils.TruncateString(info.Title, 28),
				duration,
				trackSize(track.Location))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 Запустите 'jukebox' и щелкните по обложке, чтобы начать воспроизведение")
}

// trackSize возвращает размер локального файла трека
func trackSize(location string) string {
	if catalog.IsRemote(location) {
		return "сеть"
	}
	stat, err := os.Stat(location)
	if err != nil {
		return "N/A"
	}
	return utils.FormatFileSize(stat.Size())
}
