package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"passview/internal/adapters/passstore"
	"passview/internal/adapters/tui"
	"passview/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := passstore.New(config.ExpandHome(cfg.StorePath))
	if !store.IsInitialized() {
		fmt.Fprintf(os.Stderr, "No password store at %s. Run `pass init` first.\n", cfg.StorePath)
		os.Exit(1)
	}

	app := tui.NewApp(cfg, store)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
