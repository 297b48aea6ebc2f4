// gallery is the interactive console for the art gallery management
// system. It loads the JSON collections from the data directory,
// optionally seeds demonstration data, and runs the menu loop until
// the user exits. All state lives in plain JSON files; there is no
// server and no network dependency.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/iliyamo/art-gallery/internal/config"
	"github.com/iliyamo/art-gallery/internal/console"
	"github.com/iliyamo/art-gallery/internal/seed"
	"github.com/iliyamo/art-gallery/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	flags := pflag.NewFlagSet("gallery", pflag.ContinueOnError)
	dataDir := flags.String("data-dir", cfg.DataDir, "directory holding the JSON collections")
	locale := flags.String("locale", cfg.Locale, "BCP 47 locale for money and number output")
	demoSeed := flags.Bool("seed", cfg.Seed, "seed demo data when the gallery is empty")
	verbose := flags.Bool("verbose", false, "log every domain mutation to stderr")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gallery, err := service.New(*dataDir, logger)
	if err != nil {
		return err
	}
	if *demoSeed {
		if err := seed.Demo(gallery); err != nil {
			return err
		}
	}

	return console.New(gallery, os.Stdin, os.Stdout, *locale).Run()
}
