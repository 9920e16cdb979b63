// Package console is the browser-facing client for the quotation API.
//
// It renders the quotation table and an add/edit modal as server-side
// HTML. The rendered list is a local cache ([Board]) that only changes
// after the API confirmed a write. At most one add or edit [Session] is
// open at a time.
package console

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// Board caches the quotation list shown in the table.
//
// The cache is filled once on first view and again only on an explicit
// Load. Writes go to the API first; the cache is changed only when the
// call succeeded, so a failure always leaves the previous list in place.
type Board struct {
	api    ports.QuotationAPI
	logger *slog.Logger

	mu      sync.RWMutex
	items   []domain.QuotationRequest
	loaded  bool
	loadErr error
}

// NewBoard creates an empty, not yet loaded board.
func NewBoard(api ports.QuotationAPI, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}

	return &Board{api: api, logger: logger}
}

// EnsureLoaded fetches the list if it has never been fetched.
// A failed first load is not retried here; see Load.
func (b *Board) EnsureLoaded(ctx context.Context) {
	b.mu.RLock()
	loaded := b.loaded
	b.mu.RUnlock()

	if !loaded {
		_ = b.Load(ctx)
	}
}

// Load fetches the full list. On failure the board shows an empty list and
// remembers the error until the next successful load.
func (b *Board) Load(ctx context.Context) error {
	items, err := b.api.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.loaded = true

	if err != nil {
		logging.FromContextOr(ctx, b.logger).WarnContext(ctx, "loading quotations failed",
			slog.Any("error", err),
		)

		b.items = nil
		b.loadErr = err

		return err
	}

	b.items = items
	b.loadErr = nil

	return nil
}

// Items returns a copy of the cached list in display order.
func (b *Board) Items() []domain.QuotationRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.items)
}

// LoadError returns the error of the last load, or nil.
func (b *Board) LoadError() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.loadErr
}

// Find returns the cached record with id.
func (b *Board) Find(id int64) (domain.QuotationRequest, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.index(id); i >= 0 {
		return b.items[i], true
	}

	return domain.QuotationRequest{}, false
}

// Lookup returns the cached record with id, asking the API when the cache
// does not hold it. A fetched record is not added to the list.
func (b *Board) Lookup(ctx context.Context, id int64) (domain.QuotationRequest, error) {
	if rec, ok := b.Find(id); ok {
		return rec, nil
	}

	rec, err := b.api.Get(ctx, id)
	if err != nil {
		return domain.QuotationRequest{}, err
	}

	return *rec, nil
}

// Create submits a new quotation and appends it on success.
func (b *Board) Create(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	created, err := b.api.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.items = append(b.items, *created)
	b.mu.Unlock()

	return created, nil
}

// Update submits new fields for id and replaces the cached record on success.
func (b *Board) Update(
	ctx context.Context,
	id int64,
	fields domain.QuotationFields,
) (*domain.QuotationRequest, error) {
	updated, err := b.api.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if i := b.index(id); i >= 0 {
		b.items[i] = *updated
	}
	b.mu.Unlock()

	return updated, nil
}

// Delete removes id through the API and then from the cache.
func (b *Board) Delete(ctx context.Context, id int64) error {
	if err := b.api.Delete(ctx, id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = slices.DeleteFunc(b.items, func(q domain.QuotationRequest) bool {
		return q.ID == id
	})

	return nil
}

// index must be called with mu held.
func (b *Board) index(id int64) int {
	return slices.IndexFunc(b.items, func(q domain.QuotationRequest) bool {
		return q.ID == id
	})
}

// userMessage turns an API error into text for the page.
func userMessage(err error) string {
	var single *domain.ValidationError

	switch {
	case err == nil:
		return ""
	case domain.IsNotFound(err):
		return "Quotation not found"
	case errors.As(err, &single) && single.Field == "":
		return single.Message
	case domain.IsValidation(err):
		return "The quotation is invalid."
	case domain.IsUnavailable(err):
		return "The quotation service is unavailable. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
