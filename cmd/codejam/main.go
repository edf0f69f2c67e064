package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mishasvintus/codejam_client/internal/config"
	"github.com/mishasvintus/codejam_client/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	a, err := newApp(cfg.API.BaseURL, zlog, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	registry := NewCommandRegistry(os.Stdout)
	registerCommands(registry, a)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = registry.Execute(ctx, os.Args[1:])
	stop()
	_ = zlog.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
