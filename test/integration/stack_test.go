//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotation-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotation-service/internal/adapters/clients/acl"
	apihttp "github.com/jsamuelsen/quotation-service/internal/adapters/http"
	"github.com/jsamuelsen/quotation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotation-service/internal/adapters/store"
	"github.com/jsamuelsen/quotation-service/internal/adapters/store/memory"
	"github.com/jsamuelsen/quotation-service/internal/app"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startAPI serves the full API over a fresh, instrumented memory store.
// The caller closes the server.
func startAPI() (*httptest.Server, error) {
	registry := ports.NewHealthRegistry()

	mem := memory.New()
	if err := registry.Register(mem); err != nil {
		return nil, err
	}

	metrics, err := store.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	instrumented := store.Instrument(mem, config.StoreDriverMemory, metrics)

	service := app.NewQuotationService(app.QuotationServiceConfig{Store: instrumented, Logger: discardLogger()})

	engine := gin.New()
	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		Logger:      discardLogger(),
		ServiceName: "quotation-service",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"),
			handlers.WithGatherer(prometheus.NewRegistry())),
		QuotationHandler: handlers.NewQuotationHandler(service),
		Timeout:          5 * time.Second,
	})

	return httptest.NewServer(engine), nil
}

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	srv, err := startAPI()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	return srv
}

// newQuotationClient returns the console's API client for baseURL.
func newQuotationClient(t *testing.T, baseURL string) *acl.QuotationClient {
	t.Helper()

	c, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: acl.ServiceName,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 3,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 50,
			IdleConnTimeout:     30 * time.Second,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	return acl.NewQuotationClient(c, discardLogger())
}
