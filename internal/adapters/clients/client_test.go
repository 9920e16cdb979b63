package clients

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
)

type payload struct {
	Title string `json:"title"`
}

type failure struct {
	Message string `json:"message"`
}

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "quotation-api",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// countingServer answers with statuses in order, repeating the last one.
func countingServer(t *testing.T, statuses ...int) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(atomic.AddInt32(&calls, 1))
		status := statuses[min(n, len(statuses))-1]
		if status >= http.StatusBadRequest {
			writeJSON(w, status, failure{Message: http.StatusText(status)})
			return
		}
		writeJSON(w, status, payload{Title: "ok"})
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "config is required")

	cfg := testConfig("http://localhost")
	cfg.ServiceName = ""
	_, err = New(cfg)
	assert.ErrorContains(t, err, "service name is required")

	cfg = testConfig("")
	_, err = New(cfg)
	assert.ErrorContains(t, err, "base url is required")
}

func TestNew_Success(t *testing.T) {
	client, err := New(testConfig("http://localhost:8080/"))

	require.NoError(t, err)
	assert.Equal(t, "quotation-api", client.ServiceName())
	assert.Equal(t, StateClosed, client.CircuitState())
}

func TestClient_DecodesResultAndSendsBody(t *testing.T) {
	var received payload
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&received)
		writeJSON(w, http.StatusCreated, payload{Title: "stored " + received.Title})
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	var result payload
	resp, err := client.Do(context.Background(), http.MethodPost, "/quotations", payload{Title: "A"}, &result, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "A", received.Title)
	assert.Contains(t, contentType, "application/json")
	assert.Equal(t, "stored A", result.Title)
}

func TestClient_DecodesErrorBody(t *testing.T) {
	srv, calls := countingServer(t, http.StatusNotFound)

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	var errBody failure
	resp, err := client.Do(context.Background(), http.MethodGet, "/quotations/9", nil, nil, &errBody)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "Not Found", errBody.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, StateClosed, client.CircuitState())
}

func TestClient_HeaderPropagation(t *testing.T) {
	var requestID, correlationID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(middleware.HeaderRequestID)
		correlationID = r.Header.Get(middleware.HeaderCorrelationID)
		writeJSON(w, http.StatusOK, payload{})
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-123")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-456")

	_, err = client.Do(ctx, http.MethodGet, "/quotations", nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "corr-456", correlationID)
}

func TestClient_RetriesIdempotentServerErrors(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedCalls  int32
		expectedStatus int
	}{
		{name: "GET is retried", method: http.MethodGet, expectedCalls: 3, expectedStatus: http.StatusOK},
		{name: "PUT is retried", method: http.MethodPut, expectedCalls: 3, expectedStatus: http.StatusOK},
		{name: "POST is not retried", method: http.MethodPost, expectedCalls: 1, expectedStatus: http.StatusInternalServerError},
		{name: "DELETE is not retried", method: http.MethodDelete, expectedCalls: 1, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := countingServer(t, http.StatusInternalServerError, http.StatusBadGateway, http.StatusOK)

			client, err := New(testConfig(srv.URL))
			require.NoError(t, err)

			var body any
			if tt.method == http.MethodPut || tt.method == http.MethodPost {
				body = payload{Title: "x"}
			}

			resp, err := client.Do(context.Background(), tt.method, "/quotations/1", body, nil, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode())
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestClient_RetriesExhausted(t *testing.T) {
	srv, calls := countingServer(t, http.StatusServiceUnavailable)

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), http.MethodGet, "/quotations", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(testConfig(url))
	require.NoError(t, err)

	_, err = client.Do(context.Background(), http.MethodGet, "/quotations", nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_CircuitOpensOnServerErrors(t *testing.T) {
	srv, calls := countingServer(t, http.StatusInternalServerError)

	cfg := testConfig(srv.URL)
	cfg.Circuit.MaxFailures = 2

	client, err := New(cfg)
	require.NoError(t, err)

	for range 2 {
		_, err = client.Do(context.Background(), http.MethodPost, "/quotations", payload{}, nil, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, StateOpen, client.CircuitState())

	_, err = client.Do(context.Background(), http.MethodPost, "/quotations", payload{}, nil, nil)

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Do(ctx, http.MethodGet, "/quotations", nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateBackoff(t *testing.T) {
	client, err := New(testConfig("http://localhost"))
	require.NoError(t, err)

	first := client.calculateBackoff(1)
	assert.InDelta(t, float64(5*time.Millisecond), float64(first), float64(time.Millisecond))

	second := client.calculateBackoff(2)
	assert.InDelta(t, float64(10*time.Millisecond), float64(second), float64(time.Millisecond))

	capped := client.calculateBackoff(10)
	assert.LessOrEqual(t, capped, 22*time.Millisecond)
	assert.GreaterOrEqual(t, capped, 18*time.Millisecond)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(context.DeadlineExceeded))
}
