package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bcl-factory/internal/adapter/github"
	httpadapter "bcl-factory/internal/adapter/http"
	"bcl-factory/internal/adapter/mailer"
	"bcl-factory/internal/adapter/postgres"
	"bcl-factory/internal/adapter/render"
	"bcl-factory/internal/adapter/template"
	"bcl-factory/internal/adapter/usecase"
	"bcl-factory/internal/config"
	"bcl-factory/internal/db"
)

// main is the entry point of the factory. It loads configuration,
// optionally runs database migrations, wires the pipeline adapters and the
// worker pool, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server and drains in-flight runs.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)
	publisher, err := github.NewPublisher(cfg.GitHub, logger)
	if err != nil {
		logger.Error("github client error", slog.Any("error", err))
		os.Exit(1)
	}
	provisioner := usecase.NewProvisioner(
		repo,
		template.NewMaterializer(cfg.Provision.TemplatePath, logger),
		publisher,
		render.NewDeployer(cfg.Render, cfg.Template, logger),
		mailer.NewNotifier(cfg.SMTP, logger),
		nil,
		logger,
	)
	workPool := usecase.NewPool(
		provisioner,
		cfg.Provision.Workers,
		cfg.Provision.QueueSize,
		time.Duration(cfg.Provision.RunTimeoutMinutes)*time.Minute,
		logger,
	)
	defer workPool.Close()

	handler := httpadapter.NewHandler(workPool, repo, cfg.HTTP.AllowedOrigins, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
