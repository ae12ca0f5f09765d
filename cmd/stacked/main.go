// Package main is the entry point for the stacked CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"stacked/internal/cli"
	"stacked/internal/config"
	"stacked/internal/exitcode"
	"stacked/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; a missing file is the normal case
	_ = godotenv.Load()

	var (
		configDir string
		dataFile  string
		quiet     bool
		debug     bool
	)
	flag.StringVar(&configDir, "config", "", "config directory")
	flag.StringVar(&dataFile, "data", "", "task data file")
	flag.BoolVar(&quiet, "quiet", false, "suppress task totals")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.UserError
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if quiet {
		cfg.Quiet = true
	}
	if debug {
		cfg.Debug = true
	}

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// Cancel the session on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store := storage.New(cfg.DataFile, logger)
	list := cli.LoadOrEmpty(store, os.Stderr, logger)

	session := cli.NewSession(list, os.Stdout, os.Stderr, cfg.Quiet)
	return session.Run(ctx, os.Stdin)
}
