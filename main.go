package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amanijl/courtside/internal/access"
	"github.com/amanijl/courtside/internal/config"
	"github.com/amanijl/courtside/internal/database"
	server "github.com/amanijl/courtside/internal/http"
	"github.com/amanijl/courtside/internal/league"
	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/notifier/slack"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	gate := access.NewGate(cfg.Access.DataEntryEmails, cfg.Access.ProfileEditEmails)
	if err := gate.Validate(); err != nil {
		log.Fatalf("Invalid access configuration: %s", err)
	}

	playerStore := roster.New(db)
	defer playerStore.Close()
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsub := pubsub.New(cfg.ProjectID)
	leagueSvc := league.New(playerStore, gate, notifier, metricsSvc, pubsub)

	added, err := leagueSvc.SeedRoster()
	if err != nil {
		log.Fatalf("Failed to seed roster: %s", err)
	}
	if added > 0 {
		log.Info("Seeded default roster players", "added", added)
	}

	// Keep a standings feed open for the life of the process so the watcher
	// metrics reflect the real subscriber experience.
	unsubscribe := leagueSvc.WatchRoster(
		func(standings []ranking.RankedPlayer) {
			log.Debug("Standings snapshot delivered", "players", len(standings))
		},
		func(err error) {
			log.Error("Standings feed broke", "error", err)
		},
	)
	defer unsubscribe()

	s := server.NewServer(
		playerStore,
		leagueSvc,
		gate,
		metricsSvc,
		metricsHandler,
		cfg,
		pubsub,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
