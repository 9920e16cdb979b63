package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen/quotation-service/internal/adapters/store/memory"
	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

var _ ports.QuotationStore = (*Instrumented)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validFields() domain.QuotationFields {
	return SampleQuotations()[0]
}

func TestOpen_MemoryDriver(t *testing.T) {
	h, err := Open(context.Background(), &config.StoreConfig{Driver: config.StoreDriverMemory},
		prometheus.NewRegistry(), testLogger())
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, "store-memory", h.Health().Name())

	list, err := h.Store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_Seed(t *testing.T) {
	h, err := Open(context.Background(), &config.StoreConfig{Driver: config.StoreDriverMemory, Seed: true},
		prometheus.NewRegistry(), testLogger())
	require.NoError(t, err)

	list, err := h.Store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "John Doe", list[0].CustomerName)
	assert.Equal(t, int64(5), list[4].ID)
	assert.Equal(t, "Charlie White", list[4].CustomerName)

	created, err := h.Store.Insert(context.Background(), validFields())
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.StoreConfig{Driver: "cassandra"},
		prometheus.NewRegistry(), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestOpen_TwiceOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := Open(context.Background(), &config.StoreConfig{Driver: config.StoreDriverMemory}, reg, testLogger())
	require.NoError(t, err)

	_, err = Open(context.Background(), &config.StoreConfig{Driver: config.StoreDriverMemory}, reg, testLogger())
	assert.NoError(t, err)
}

func TestSample_AllValid(t *testing.T) {
	for _, f := range SampleQuotations() {
		assert.NoError(t, f.Validate(), f.CustomerName)
	}
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.Insert(ctx, validFields())
	require.NoError(t, err)

	n, err := Seed(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, s.Len())
}

func TestInstrumented_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	s := Instrument(memory.New(), "store-memory", m)

	created, err := s.Insert(ctx, validFields())
	require.NoError(t, err)

	_, err = s.GetByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = s.GetByID(ctx, 404)
	require.Error(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("insert", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("get", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("get", resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("delete", resultOK)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.duration))
}

type failingStore struct {
	ports.QuotationStore
}

func (failingStore) List(context.Context) ([]domain.QuotationRequest, error) {
	return nil, errors.New("disk on fire")
}

func TestInstrumented_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	s := Instrument(failingStore{QuotationStore: memory.New()}, "store-memory", m)

	_, err = s.List(context.Background())
	require.Error(t, err)

	_, err = s.GetByID(context.Background(), 3)
	require.True(t, domain.IsNotFound(err))

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "QuotationStore.list", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	// not found is an expected outcome, not a span error
	assert.Equal(t, "QuotationStore.get", spans[1].Name())
	assert.NotEqual(t, codes.Error, spans[1].Status().Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("list", resultError)))
}
