// Package main is the entry point for the quotation console, the browser
// client of the quotation API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jsamuelsen/quotation-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotation-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotation-service/internal/adapters/http"
	"github.com/jsamuelsen/quotation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotation-service/internal/console"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
	"github.com/jsamuelsen/quotation-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// Build-time variables, injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	serviceName := cfg.App.Name + "-console"

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: cfg.App.Version,
	})
	slog.SetDefault(logger)

	logger.Info("starting console",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("api", cfg.Console.APIBaseURL),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// API client (retry, circuit breaker, tracing) behind the ACL
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Console.APIBaseURL,
		ServiceName: acl.ServiceName,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	quotationClient := acl.NewQuotationClient(httpClient, logger)

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(quotationClient); err != nil {
		return fmt.Errorf("registering API health check: %w", err)
	}

	server := http.New("console", &cfg.Console.Server, logger)
	engine := server.Engine()

	http.UseStandardMiddleware(engine, logger, serviceName)
	handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)).
		RegisterHealthRoutesOnEngine(engine)

	engine.Use(middleware.Timeout(cfg.Console.Server.RequestTimeout))

	ui := console.New(console.Config{
		Title:  cfg.Console.Title,
		API:    quotationClient,
		Logger: logger,
	})
	if err := ui.RegisterRoutes(engine); err != nil {
		return fmt.Errorf("registering console routes: %w", err)
	}

	serverErr, err := server.Start()
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Console.Server.ShutdownTimeout)
}

func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}

		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
