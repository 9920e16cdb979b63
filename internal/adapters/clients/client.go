package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotation-service/internal/adapters/clients"

	// defaultTimeout is the per-attempt timeout when none is configured.
	defaultTimeout = 10 * time.Second

	// jitterRangeMultiplier converts rand [0,1) to [-1,1) for symmetric jitter.
	jitterRangeMultiplier = 2
)

// Config configures a Client.
type Config struct {
	// BaseURL is prefixed to every request path, e.g. "http://localhost:8080".
	BaseURL string

	// ServiceName identifies the downstream service in logs, spans and metrics.
	ServiceName string

	// Timeout is the per-attempt timeout. Retries and backoff add to the
	// total wall-clock time.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Client is an instrumented JSON client for one downstream service.
// It layers over resty:
//   - retries for idempotent methods only, with exponential backoff and jitter
//   - a circuit breaker around each logical request
//   - OpenTelemetry spans, metrics and W3C trace propagation
//   - request and correlation ID forwarding
type Client struct {
	rest        *resty.Client
	serviceName string
	retry       config.RetryConfig
	logger      *slog.Logger
	cb          *CircuitBreaker

	tracer          trace.Tracer
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a Client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("downstream", cfg.ServiceName))

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Circuit.MaxFailures,
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	c := &Client{
		serviceName:     cfg.ServiceName,
		retry:           cfg.Retry,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}

	c.rest = resty.NewWithClient(&http.Client{Transport: newTransport(cfg.Transport)}).
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger}).
		SetRetryCount(max(cfg.Retry.MaxAttempts-1, 0)).
		SetRetryWaitTime(cfg.Retry.InitialInterval).
		SetRetryMaxWaitTime(cfg.Retry.MaxInterval).
		SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			return c.calculateBackoff(r.Request.Attempt), nil
		}).
		AddRetryCondition(shouldRetry)

	return c, nil
}

func newTransport(cfg config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.MaxIdleConns > 0 {
		t.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}
	if cfg.IdleConnTimeout > 0 {
		t.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return t
}

// Do sends one logical request and returns the final response.
// body is encoded as JSON when non-nil. result is decoded for 2xx
// responses and errBody for 4xx/5xx ones.
//
// A returned error means no usable response: the circuit is open, the
// transport failed, or ctx ended. HTTP error statuses are returned as
// responses; 5xx ones count as circuit breaker failures.
func (c *Client) Do(ctx context.Context, method, path string, body, result, errBody any) (*resty.Response, error) {
	start := time.Now()
	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", method),
		slog.String("path", path),
	)

	if !c.cb.Allow() {
		c.recordMetrics(ctx, method, 0, time.Since(start), "circuit_open")
		logger.WarnContext(ctx, "request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	req := c.rest.R().SetContext(ctx)
	injectHeaders(ctx, req.Header)

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if errBody != nil {
		req.SetError(errBody)
	}

	resp, err := req.Execute(method, path)

	return c.recordResult(ctx, method, resp, err, span, logger, start)
}

func (c *Client) recordResult(
	ctx context.Context,
	method string,
	resp *resty.Response,
	err error,
	span trace.Span,
	logger *slog.Logger,
	start time.Time,
) (*resty.Response, error) {
	duration := time.Since(start)

	if err != nil {
		c.cb.RecordFailure()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, method, 0, duration, "error")
		logger.ErrorContext(ctx, "request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))

	switch {
	case status >= http.StatusInternalServerError:
		c.cb.RecordFailure()
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		logger.WarnContext(ctx, "downstream server error",
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	default:
		c.cb.RecordSuccess()
		logger.DebugContext(ctx, "request completed",
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}

	c.recordMetrics(ctx, method, status, duration, fmt.Sprintf("%dxx", status/100))

	return resp, nil
}

// CircuitState returns the current circuit breaker state.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// ServiceName returns the downstream service name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// injectHeaders forwards IDs and the trace context of ctx.
func injectHeaders(ctx context.Context, h http.Header) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		h.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		h.Set(middleware.HeaderCorrelationID, id)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}

// calculateBackoff returns the wait before the retry that follows attempt
// (1-based): InitialInterval * Multiplier^(attempt-1), capped at
// MaxInterval, with ±JitterFactor jitter.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	exp := max(attempt-1, 0)
	backoff := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(exp))

	if maxInterval := float64(c.retry.MaxInterval); maxInterval > 0 && backoff > maxInterval {
		backoff = maxInterval
	}

	jitter := rand.Float64()*jitterRangeMultiplier - 1 //nolint:gosec // jitter does not need crypto randomness
	backoff += backoff * c.retry.JitterFactor * jitter

	return time.Duration(backoff)
}

func (c *Client) recordMetrics(ctx context.Context, method string, status int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// shouldRetry retries GET and PUT on transport failures and 5xx responses.
// POST would create duplicates and a repeated DELETE reports not found,
// so neither is retried.
func shouldRetry(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || !idempotent(r.Request.Method) {
		return false
	}

	if err != nil {
		return isRetryableError(err)
	}

	return r.StatusCode() >= http.StatusInternalServerError
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut:
		return true
	default:
		return false
	}
}

// isRetryableError reports whether a transport error is worth retrying.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

// restyLogger routes resty's internal logging to slog.
type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Warn(fmt.Sprintf(format, v...), slog.String("source", "resty"))
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn(fmt.Sprintf(format, v...), slog.String("source", "resty"))
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug(fmt.Sprintf(format, v...), slog.String("source", "resty"))
}
