package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yachai/yachai-cli/internal/api"
	"github.com/yachai/yachai-cli/internal/config"
	"github.com/yachai/yachai-cli/internal/db"
	"github.com/yachai/yachai-cli/internal/logger"
	"github.com/yachai/yachai-cli/internal/store"
	"github.com/yachai/yachai-cli/internal/store/sqlite"
	"github.com/yachai/yachai-cli/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	// Initialize logger. Diagnostics go to stderr; the screens own stdout.
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	)
	logger.SetDefault(log)

	log.Debug("api_base_url=%s", cfg.APIBaseURL)
	log.Debug("store_path=%s", cfg.StorePath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("http_timeout=%s", cfg.HTTPTimeout)
	log.Debug("chat_poll_interval=%s", cfg.ChatPollInterval)

	// Open local store
	database, err := db.Open(cfg.StorePath)
	if err != nil {
		log.Error("failed to open local store: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing local store")
		database.Close()
	}()

	users := sqlite.NewUserStore(database.DB)
	sessions := store.NewSessionStore()
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the screen loop on SIGINT/SIGTERM so in-flight requests unwind.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-stop
		log.Info("received signal: %v", sig)
		cancel()
	}()

	app := ui.NewApp(client, users, sessions, cfg, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Error("application error: %v", err)
		os.Exit(1)
	}
}
