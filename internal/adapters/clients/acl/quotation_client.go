package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotation-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// ServiceName identifies the quotation API in errors and health checks.
const ServiceName = "quotation-api"

const (
	quotationsPath = "/quotations"
	livenessPath   = "/-/live"
)

// QuotationClient talks to the quotation API on behalf of the console.
type QuotationClient struct {
	client *clients.Client
	logger *slog.Logger
}

var (
	_ ports.QuotationAPI  = (*QuotationClient)(nil)
	_ ports.HealthChecker = (*QuotationClient)(nil)
)

// NewQuotationClient wraps an instrumented client pointed at the API.
func NewQuotationClient(client *clients.Client, logger *slog.Logger) *QuotationClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotationClient{client: client, logger: logger}
}

// List returns every quotation in id order.
func (c *QuotationClient) List(ctx context.Context) ([]domain.QuotationRequest, error) {
	var items []quotationWire
	if err := c.do(ctx, "list quotations", http.MethodGet, quotationsPath, nil, &items, 0); err != nil {
		return nil, err
	}

	out, err := TranslateSlice(items, toDomain)
	if err != nil {
		return nil, c.invalidResponse(ctx, "list quotations", err)
	}

	return out, nil
}

// Get fetches one quotation.
func (c *QuotationClient) Get(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	return c.single(ctx, "get quotation", http.MethodGet, id, nil)
}

// Create submits a new quotation and returns it with its assigned id.
func (c *QuotationClient) Create(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	var w quotationWire
	if err := c.do(ctx, "create quotation", http.MethodPost, quotationsPath, toWire(fields), &w, 0); err != nil {
		return nil, err
	}

	q, err := toDomain(&w)
	if err != nil {
		return nil, c.invalidResponse(ctx, "create quotation", err)
	}

	return &q, nil
}

// Update replaces the fields of an existing quotation.
func (c *QuotationClient) Update(
	ctx context.Context,
	id int64,
	fields domain.QuotationFields,
) (*domain.QuotationRequest, error) {
	body := toWire(fields)
	return c.single(ctx, "update quotation", http.MethodPut, id, &body)
}

// Delete removes a quotation.
func (c *QuotationClient) Delete(ctx context.Context, id int64) error {
	var msg messageWire
	if err := c.do(ctx, "delete quotation", http.MethodDelete, itemPath(id), nil, &msg, id); err != nil {
		return err
	}

	logging.FromContextOr(ctx, c.logger).DebugContext(ctx, "quotation deleted",
		slog.Int64("id", id),
		slog.String("message", msg.Message),
	)

	return nil
}

// Name implements ports.HealthChecker.
func (c *QuotationClient) Name() string {
	return ServiceName
}

// Check reports whether the API answers its liveness endpoint.
func (c *QuotationClient) Check(ctx context.Context) error {
	return c.do(ctx, "liveness check", http.MethodGet, livenessPath, nil, nil, 0)
}

func (c *QuotationClient) single(
	ctx context.Context,
	operation, method string,
	id int64,
	body *fieldsWire,
) (*domain.QuotationRequest, error) {
	var payload any
	if body != nil {
		payload = body
	}

	var w quotationWire
	if err := c.do(ctx, operation, method, itemPath(id), payload, &w, id); err != nil {
		return nil, err
	}

	q, err := toDomain(&w)
	if err != nil {
		return nil, c.invalidResponse(ctx, operation, err)
	}

	return &q, nil
}

func (c *QuotationClient) do(
	ctx context.Context,
	operation, method, path string,
	body, result any,
	id int64,
) error {
	logger := logging.FromContextOr(ctx, c.logger)
	logger.Log(ctx, logging.LevelTrace, "calling quotation api",
		slog.String("operation", operation),
		slog.String("path", path),
	)

	var errBody errorBody

	resp, err := c.client.Do(ctx, method, path, body, result, &errBody)
	if err != nil {
		return mapClientError(ServiceName, operation, err)
	}

	if status := resp.StatusCode(); status >= http.StatusBadRequest {
		mapped := mapStatus(ServiceName, status, &errBody, id)
		logger.DebugContext(ctx, "quotation api rejected request",
			slog.String("operation", operation),
			slog.Int("status", status),
			slog.String("code", errBody.Code),
		)

		return mapped
	}

	return nil
}

func (c *QuotationClient) invalidResponse(ctx context.Context, operation string, err error) error {
	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "invalid quotation api response",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return errors.Join(domain.NewUnavailableError(ServiceName, "invalid response to "+operation), err)
}

func itemPath(id int64) string {
	return quotationsPath + "/" + domain.FormatID(id)
}
