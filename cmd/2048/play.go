package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajai-sharma-backup/2048/internal/config"
	"github.com/ajai-sharma-backup/2048/internal/core"
	"github.com/ajai-sharma-backup/2048/internal/game"
	"github.com/ajai-sharma-backup/2048/internal/platform/tui"
	"github.com/ajai-sharma-backup/2048/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	session := game.New(rules)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(session, store, cfg, func() int { return session.Grid().MaxTile() })

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
