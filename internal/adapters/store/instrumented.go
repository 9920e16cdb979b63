package store

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/quotation-service/store"

// Operation result labels.
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Metrics holds the store's Prometheus collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the store collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotation_store_operations_total",
		Help: "Quotation store operations by result.",
	}, []string{"operation", "result"})

	dur := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quotation_store_operation_duration_seconds",
		Help:    "Quotation store operation latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	var err error

	if ops, err = register(reg, ops); err != nil {
		return nil, err
	}

	if dur, err = register(reg, dur); err != nil {
		return nil, err
	}

	return &Metrics{operations: ops, duration: dur}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if reg == nil {
		return c, nil
	}

	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

// Instrumented decorates a store with metrics and tracing.
type Instrumented struct {
	next    ports.QuotationStore
	driver  string
	metrics *Metrics
	tracer  trace.Tracer
}

// Instrument wraps next. driver is recorded on every span.
func Instrument(next ports.QuotationStore, driver string, m *Metrics) *Instrumented {
	return &Instrumented{
		next:    next,
		driver:  driver,
		metrics: m,
		tracer:  otel.Tracer(instrumentationName),
	}
}

// List implements ports.QuotationStore.
func (s *Instrumented) List(ctx context.Context) ([]domain.QuotationRequest, error) {
	ctx, done := s.start(ctx, "list", 0)

	out, err := s.next.List(ctx)
	done(err)

	return out, err
}

// GetByID implements ports.QuotationStore.
func (s *Instrumented) GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	ctx, done := s.start(ctx, "get", id)

	out, err := s.next.GetByID(ctx, id)
	done(err)

	return out, err
}

// Insert implements ports.QuotationStore.
func (s *Instrumented) Insert(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	ctx, done := s.start(ctx, "insert", 0)

	out, err := s.next.Insert(ctx, fields)
	if err == nil {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("quotation.id", out.ID))
	}

	done(err)

	return out, err
}

// Update implements ports.QuotationStore.
func (s *Instrumented) Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	ctx, done := s.start(ctx, "update", id)

	out, err := s.next.Update(ctx, id, fields)
	done(err)

	return out, err
}

// Delete implements ports.QuotationStore.
func (s *Instrumented) Delete(ctx context.Context, id int64) error {
	ctx, done := s.start(ctx, "delete", id)

	err := s.next.Delete(ctx, id)
	done(err)

	return err
}

// start opens a span and returns a func that closes it and records metrics.
func (s *Instrumented) start(ctx context.Context, op string, id int64) (context.Context, func(error)) {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", s.driver),
		attribute.String("db.operation", op),
	}
	if id > 0 {
		attrs = append(attrs, attribute.Int64("quotation.id", id))
	}

	ctx, span := s.tracer.Start(ctx, "QuotationStore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	began := time.Now()

	return ctx, func(err error) {
		result := resultOK

		switch {
		case err == nil:
		case domain.IsNotFound(err):
			result = resultNotFound
		default:
			result = resultError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		if s.metrics != nil {
			s.metrics.operations.WithLabelValues(op, result).Inc()
			s.metrics.duration.WithLabelValues(op).Observe(time.Since(began).Seconds())
		}

		span.End()
	}
}
