package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"massive-gateway/internal/config"
	"massive-gateway/internal/database"
	"massive-gateway/internal/handler"
	"massive-gateway/internal/massive"
	"massive-gateway/internal/middleware"
	"massive-gateway/internal/repository"
	"massive-gateway/internal/router"
	"massive-gateway/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.MassiveAPIKey == "" {
		slog.Warn("MASSIVE_API_KEY environment variable not set; upstream requests will be rejected")
	}

	client := massive.New(cfg.MassiveAPIKey,
		massive.WithBaseURL(cfg.MassiveBaseURL),
		massive.WithUserAgent(cfg.UserAgent),
		massive.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
	)

	var db *database.DB
	var usageRepo *repository.UsageRepository
	if cfg.UsageEnabled() {
		slog.Info("connecting to PostgreSQL for usage logging")
		db, err = database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		usageRepo = repository.NewUsageRepository(db.Pool)
		slog.Info("usage logging ready")
	}
	usageService := service.NewUsageService(usageRepo)

	authService, err := service.NewAuthService(cfg.ClientsFile, cfg.JWTSecret, cfg.JWTAccessTTL)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	if authService.Enabled() {
		slog.Info("bearer-token auth enabled", "clients_file", cfg.ClientsFile)
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, usageService, router.Handlers{
		Health:     handler.NewHealthHandler(client),
		Auth:       handler.NewAuthHandler(authService),
		Usage:      handler.NewUsageHandler(usageService),
		Aggs:       handler.NewAggsHandler(client),
		Trades:     handler.NewTradesHandler(client),
		Quotes:     handler.NewQuotesHandler(client),
		Snapshot:   handler.NewSnapshotHandler(client),
		Market:     handler.NewMarketHandler(client),
		Tickers:    handler.NewTickersHandler(client),
		Corporate:  handler.NewCorporateActionsHandler(client),
		Short:      handler.NewShortHandler(client),
		Financials: handler.NewFinancialsHandler(client),
		Economy:    handler.NewEconomyHandler(client),
		Ratios:     handler.NewRatiosHandler(client),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	app := &App{server: server, db: db}
	if db != nil {
		app.cleanupFuncs = append(app.cleanupFuncs, db.Close)
	}

	return app, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
