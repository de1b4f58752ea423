// Command server runs the HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = startup or shutdown error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	businessrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/business"
	customerrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/customer"
	eventrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/event"
	folderrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/folder"
	itemrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/item"
	ledgerrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/ledger"
	otprepo "github.com/V1p3er/anbargar/internal/adapter/postgres/otp"
	unitrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/unit"
	userrepo "github.com/V1p3er/anbargar/internal/adapter/postgres/user"
	"github.com/V1p3er/anbargar/internal/adapter/redis"
	"github.com/V1p3er/anbargar/internal/app"
	jwtauth "github.com/V1p3er/anbargar/internal/auth"
	"github.com/V1p3er/anbargar/internal/config"
	authsvc "github.com/V1p3er/anbargar/internal/service/auth"
	catalogsvc "github.com/V1p3er/anbargar/internal/service/catalog"
	customersvc "github.com/V1p3er/anbargar/internal/service/customer"
	eventsvc "github.com/V1p3er/anbargar/internal/service/event"
	forecastsvc "github.com/V1p3er/anbargar/internal/service/forecast"
	ledgersvc "github.com/V1p3er/anbargar/internal/service/ledger"
	"github.com/V1p3er/anbargar/internal/transport/rest"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// The forecast cache is optional; without Redis every prediction is
	// computed on demand.
	var forecastCache forecastsvc.ResultCache
	if cfg.Redis.CacheEnabled() {
		cache, err := redis.NewCache(ctx, cfg.Redis, cfg.Forecast.CacheTTL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer cache.Close() //nolint:errcheck
		forecastCache = cache
		logger.Info("forecast cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	businesses := businessrepo.New(pool)
	otps := otprepo.New(pool)
	folders := folderrepo.New(pool)
	items := itemrepo.New(pool)
	units := unitrepo.New(pool)
	customers := customerrepo.New(pool)
	entries := ledgerrepo.New(pool)
	events := eventrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, businesses, otps, tx, jwtManager, cfg.Auth)
	catalogService := catalogsvc.NewService(logger, folders, items, units)
	customerService := customersvc.NewService(logger, customers)
	ledgerService := ledgersvc.NewService(logger, entries, folders, items, cfg.Inventory)
	eventService := eventsvc.NewService(logger, events, items, folders, customers, ledgerService, tx)
	forecastService := forecastsvc.NewService(logger, items, entries, events, forecastCache, cfg.Forecast)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Catalog:   rest.NewCatalogHandler(catalogService, logger),
		Customer:  rest.NewCustomerHandler(customerService, logger),
		Event:     rest.NewEventHandler(eventService, logger),
		Inventory: rest.NewInventoryHandler(ledgerService, logger),
		Forecast:  rest.NewForecastHandler(forecastService, logger),
		Health:    rest.NewHealthHandler(pool, app.BuildVersion()),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(logger, cfg.CORS, authService, handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
