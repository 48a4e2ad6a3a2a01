package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/adapters/browser"
	"journeydeck/internal/adapters/clipboard"
	"journeydeck/internal/adapters/markdown"
	"journeydeck/internal/adapters/tui"
	"journeydeck/internal/config"
	"journeydeck/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to a journeydeck.yaml config file")
	debugFlag := flag.Bool("debug", false, "log navigation at debug level")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	// The screen belongs to bubbletea, so logs only go to the file.
	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	app := tui.NewApp(tui.Deps{
		Renderer:  markdown.NewRenderer(cfg.UI.MarkdownStyle, cfg.UI.WordWrap),
		Clipboard: clipboard.New(),
		Opener:    browser.NewOpener(),
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting", "alt_screen", cfg.UI.AltScreen, "markdown_style", cfg.UI.MarkdownStyle)
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()
	if path != "" {
		return loader.LoadFromFile(path)
	}
	return loader.Load()
}
