// Package store selects and wires the quotation store driver.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotation-service/internal/adapters/store/dynamo"
	"github.com/jsamuelsen/quotation-service/internal/adapters/store/memory"
	"github.com/jsamuelsen/quotation-service/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// Driver is what every store backend provides.
type Driver interface {
	ports.QuotationStore
	ports.HealthChecker
}

// Handle is an opened, instrumented store.
type Handle struct {
	// Store is the instrumented store handed to the application layer.
	Store *Instrumented

	driver Driver
	close  func() error
}

// Health returns the driver's health checker.
func (h *Handle) Health() ports.HealthChecker {
	return h.driver
}

// Close releases driver resources.
func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}

	return h.close()
}

// Open connects the configured driver, wraps it with metrics and tracing,
// and optionally seeds sample data into an empty store.
func Open(ctx context.Context, cfg *config.StoreConfig, reg prometheus.Registerer, logger *slog.Logger) (*Handle, error) {
	h := &Handle{}

	switch cfg.Driver {
	case config.StoreDriverMemory, "":
		h.driver = memory.New()

	case config.StoreDriverSQL:
		s, err := sqlstore.Open(ctx, &sqlstore.Config{
			DSN:             cfg.SQL.DSN,
			MaxOpenConns:    cfg.SQL.MaxOpenConns,
			MaxIdleConns:    cfg.SQL.MaxIdleConns,
			ConnMaxLifetime: cfg.SQL.ConnMaxLifetime,
			AutoCreate:      cfg.SQL.AutoCreate,
		}, logger)
		if err != nil {
			return nil, err
		}

		h.driver = s
		h.close = s.Close

	case config.StoreDriverDynamoDB:
		s, err := dynamo.Open(ctx, &dynamo.Config{
			Table:           cfg.DynamoDB.Table,
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		}, logger)
		if err != nil {
			return nil, err
		}

		h.driver = s

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	metrics, err := NewMetrics(reg)
	if err != nil {
		_ = h.Close()
		return nil, err
	}

	h.Store = Instrument(h.driver, h.driver.Name(), metrics)

	logger.Info("quotation store opened", slog.String("driver", h.driver.Name()))

	if cfg.Seed {
		n, err := Seed(ctx, h.Store)
		if err != nil {
			_ = h.Close()
			return nil, fmt.Errorf("seeding store: %w", err)
		}

		if n > 0 {
			logger.Info("seeded sample quotations", slog.Int("count", n))
		}
	}

	return h, nil
}
