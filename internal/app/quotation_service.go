package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// QuotationService runs the quotation request use cases.
// Fields are validated here, before any store call, so an invalid
// request never reaches persistence.
type QuotationService struct {
	store  ports.QuotationStore
	logger *slog.Logger
}

// QuotationServiceConfig contains dependencies for the quotation service.
type QuotationServiceConfig struct {
	Store  ports.QuotationStore
	Logger *slog.Logger
}

// NewQuotationService creates a quotation service.
func NewQuotationService(cfg QuotationServiceConfig) *QuotationService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotationService{
		store:  cfg.Store,
		logger: logger,
	}
}

// List returns every quotation request in id order.
func (s *QuotationService) List(ctx context.Context) ([]domain.QuotationRequest, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list quotations", slog.Any("error", err))
		return nil, err
	}

	s.log(ctx).DebugContext(ctx, "listed quotations", slog.Int("count", len(list)))

	return list, nil
}

// Get returns one quotation request.
func (s *QuotationService) Get(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logStoreError(ctx, "get", id, err)
		return nil, err
	}

	return rec, nil
}

// Create validates fields and stores a new quotation request.
func (s *QuotationService) Create(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	if err := fields.Validate(); err != nil {
		s.log(ctx).InfoContext(ctx, "rejected quotation create", slog.Any("fields", domain.FieldErrors(err)))
		return nil, err
	}

	rec, err := s.store.Insert(ctx, fields)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to create quotation", slog.Any("error", err))
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "quotation created",
		slog.Int64("quotation_id", rec.ID),
		slog.String("type", string(rec.Type)),
		slog.String("status", string(rec.Status)),
	)

	return rec, nil
}

// Update validates fields and replaces the stored quotation request.
func (s *QuotationService) Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	if err := fields.Validate(); err != nil {
		s.log(ctx).InfoContext(ctx, "rejected quotation update",
			slog.Int64("quotation_id", id),
			slog.Any("fields", domain.FieldErrors(err)),
		)
		return nil, err
	}

	rec, err := s.store.Update(ctx, id, fields)
	if err != nil {
		s.logStoreError(ctx, "update", id, err)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "quotation updated",
		slog.Int64("quotation_id", rec.ID),
		slog.String("status", string(rec.Status)),
	)

	return rec, nil
}

// Delete removes a quotation request.
func (s *QuotationService) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logStoreError(ctx, "delete", id, err)
		return err
	}

	s.log(ctx).InfoContext(ctx, "quotation deleted", slog.Int64("quotation_id", id))

	return nil
}

// log prefers the request-scoped logger carried by ctx.
func (s *QuotationService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *QuotationService) logStoreError(ctx context.Context, op string, id int64, err error) {
	if domain.IsNotFound(err) {
		s.log(ctx).InfoContext(ctx, "quotation not found",
			slog.String("operation", op),
			slog.Int64("quotation_id", id),
		)
		return
	}

	s.log(ctx).ErrorContext(ctx, "quotation store failure",
		slog.String("operation", op),
		slog.Int64("quotation_id", id),
		slog.Any("error", err),
	)
}

func checkID(id int64) error {
	if id <= 0 {
		return domain.NewValidationErrorWithValue("id", "must be a positive integer", id)
	}

	return nil
}
