// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/jsonfile"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/logging"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	// A malformed config file still yields usable defaults.
	cfg, cfgErr := config.Load("")
	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if cfgErr != nil {
		logger.Warn("ignoring config file, using defaults", "err", cfgErr)
	}

	store := jsonfile.New(cfg.TasksPath, jsonfile.Options{Logger: logger})
	logger.Debug("using tasks file", "path", store.Path())

	shell := cli.NewShell(commands.DefaultRegistry, store, cfg, logger)
	return shell.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
}
