// Command catalog-inspect loads an app catalog without the GUI and prints
// each entry the way the details pane summarizes it. It exits with status 1
// when the catalog cannot be loaded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/eggplanters/app-store/internal/catalog"
	"github.com/eggplanters/app-store/internal/config"
	"github.com/eggplanters/app-store/internal/format"
	"github.com/eggplanters/app-store/internal/logger"
	"github.com/eggplanters/app-store/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func main() {
	catalogPath := flag.String("catalog", "", "catalog JSON file (default: built-in catalog)")
	lang := flag.String("lang", "en", "language for number formatting")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	os.Exit(run(os.Stdout, log, config.ExpandPath(*catalogPath), *lang))
}

func run(out io.Writer, log logger.Logger, path, lang string) int {
	source := catalog.SourceName(path)
	entries, err := catalog.Load(path)
	if err != nil {
		log.Error("Inspect", err, map[string]interface{}{"source": source})
		fmt.Fprintln(out, "File is not JSON")
		return 1
	}
	log.Debug("Inspect", "catalog loaded", map[string]interface{}{"source": source, "entries": len(entries)})

	f := format.NewFormatterForCode(lang)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s (%d apps)", source, len(entries))))
	for i, entry := range entries {
		fmt.Fprintln(out, renderEntry(i+1, entry, f))
	}
	return 0
}

func renderEntry(position int, entry model.AppEntry, f *format.Formatter) string {
	rating := "—"
	if entry.HasRating() {
		rating = f.Rating(entry.StarRating)
	}
	return fmt.Sprintf("%2d. %s\n    %s\n    %s %s - %s+ downloads",
		position,
		titleStyle.Render(entry.GetDisplayTitle()),
		detailStyle.Render(entry.GetSubtitle()),
		starStyle.Render("★"),
		rating,
		f.Compact(entry.Downloads),
	)
}
