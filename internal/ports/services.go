// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation, ErrUnavailable)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// QuotationStore persists quotation requests.
//
// Implementations live under internal/adapters/store and are selected by
// the store.driver configuration key. Every implementation must:
//   - assign strictly increasing identifiers that are never reused
//   - return copies, so callers cannot mutate stored state
//   - return domain.ErrNotFound (wrapped) for unknown identifiers
type QuotationStore interface {
	// List returns every stored record ordered by ascending id.
	List(ctx context.Context) ([]domain.QuotationRequest, error)

	// GetByID returns one record.
	GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error)

	// Insert assigns a fresh id and stores the record.
	Insert(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error)

	// Update replaces all mutable fields of an existing record.
	// The id is preserved.
	Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error)

	// Delete removes a record. Its id is not handed out again.
	Delete(ctx context.Context, id int64) error
}

// QuotationAPI is the remote quotation service as seen by the console.
// Adapters translate transport failures into domain errors:
//   - domain.ErrValidation when the server rejected the fields
//   - domain.ErrNotFound when the record does not exist
//   - domain.ErrUnavailable when the server cannot be reached or failed
type QuotationAPI interface {
	List(ctx context.Context) ([]domain.QuotationRequest, error)
	Get(ctx context.Context, id int64) (*domain.QuotationRequest, error)
	Create(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error)
	Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error)
	Delete(ctx context.Context, id int64) error
}
