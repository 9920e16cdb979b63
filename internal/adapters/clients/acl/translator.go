package acl

import (
	"fmt"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// quotationWire is a quotation as the API serialises it.
type quotationWire struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Title        string `json:"title"`
	DueDate      string `json:"dueDate"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

// fieldsWire is the create and update request body.
type fieldsWire struct {
	CustomerName string `json:"customerName"`
	Title        string `json:"title"`
	DueDate      string `json:"dueDate"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

// messageWire is the delete confirmation body.
type messageWire struct {
	Message string `json:"message"`
}

// Translator turns one API representation into a domain value,
// rejecting data the domain would not accept.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies translate to every item, stopping at the first failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// toDomain converts an API record. A record the API itself could not have
// produced is rejected.
func toDomain(w *quotationWire) (domain.QuotationRequest, error) {
	if w.ID <= 0 {
		return domain.QuotationRequest{}, fmt.Errorf("invalid quotation id %d", w.ID)
	}

	q := domain.QuotationRequest{
		ID: w.ID,
		QuotationFields: domain.QuotationFields{
			CustomerName: w.CustomerName,
			Title:        w.Title,
			DueDate:      w.DueDate,
			Type:         domain.QuotationType(w.Type),
			Status:       domain.QuotationStatus(w.Status),
		},
	}

	if !q.Type.Valid() {
		return domain.QuotationRequest{}, fmt.Errorf("quotation %d: unknown type %q", w.ID, w.Type)
	}

	if !q.Status.Valid() {
		return domain.QuotationRequest{}, fmt.Errorf("quotation %d: unknown status %q", w.ID, w.Status)
	}

	return q, nil
}

func toWire(f domain.QuotationFields) fieldsWire {
	return fieldsWire{
		CustomerName: f.CustomerName,
		Title:        f.Title,
		DueDate:      f.DueDate,
		Type:         string(f.Type),
		Status:       string(f.Status),
	}
}
