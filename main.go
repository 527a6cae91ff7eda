package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/database"
	server "github.com/mauv0809/elo-ladder/internal/http"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/processor"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/slack"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.TursoPrimaryURL, cfg.TursoAuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := ladder.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notif notifier.Notifier
	if cfg.SlackEnabled() {
		notif = slack.NewClient(cfg.SlackToken, cfg.SlackChannelID, metricsSvc)
	} else {
		log.Warn("Slack is not configured, match results will not be posted")
	}

	var ps pubsub.PubSubClient
	if cfg.ProjectID != "" {
		client, pubsubTeardown, err := pubsub.New(cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer pubsubTeardown()
		ps = client
	} else {
		log.Warn("No project ID configured, match events will not be published")
	}

	proc := processor.New(store, notif, metricsSvc, ps, processor.RetryPolicy{
		MaxAttempts: uint64(cfg.MaxAttempts),
		BaseDelay:   cfg.RetryBase(),
	})

	s := server.NewServer(store, proc, notif, metricsSvc, metricsHandler, cfg, ps)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", "error", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
