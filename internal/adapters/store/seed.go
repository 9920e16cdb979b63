package store

import (
	"context"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

// SampleQuotations are the records a fresh development store starts with.
func SampleQuotations() []domain.QuotationFields {
	return []domain.QuotationFields{
		{
			CustomerName: "John Doe",
			Title:        "Request for Product A",
			DueDate:      "2024-07-15",
			Type:         domain.QuotationTypeStandard,
			Status:       domain.QuotationStatusPending,
		},
		{
			CustomerName: "Jane Smith",
			Title:        "Inquiry about Service B",
			DueDate:      "2024-07-20",
			Type:         domain.QuotationTypeCustom,
			Status:       domain.QuotationStatusInProgress,
		},
		{
			CustomerName: "Alice Johnson",
			Title:        "Quotation for Project C",
			DueDate:      "2024-07-25",
			Type:         domain.QuotationTypeStandard,
			Status:       domain.QuotationStatusCompleted,
		},
		{
			CustomerName: "Bob Brown",
			Title:        "Request for Maintenance",
			DueDate:      "2024-08-01",
			Type:         domain.QuotationTypeStandard,
			Status:       domain.QuotationStatusPending,
		},
		{
			CustomerName: "Charlie White",
			Title:        "Custom Software Quotation",
			DueDate:      "2024-08-05",
			Type:         domain.QuotationTypeCustom,
			Status:       domain.QuotationStatusPending,
		},
	}
}

// Seed inserts SampleQuotations when s is empty and returns how many were added.
// A store that already holds records is left alone.
func Seed(ctx context.Context, s ports.QuotationStore) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		return 0, nil
	}

	samples := SampleQuotations()
	for _, f := range samples {
		if _, err := s.Insert(ctx, f); err != nil {
			return 0, err
		}
	}

	return len(samples), nil
}
