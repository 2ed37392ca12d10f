// Package main is the entry point for the tido CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tido/internal/cli"
	"tido/internal/commands"
	"tido/internal/config"
	"tido/internal/storage"
	"tido/internal/task"
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

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config) (*task.Store, error) {
		if err := cfg.EnsureDir(); err != nil {
			return nil, err
		}
		return task.NewStore(storage.NewFileStore(cfg.Dir), task.UUIDs{}), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
