package dto

import (
	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// QuotationBody is the request body for create and update.
// Update replaces every field, so all five are required in both cases.
type QuotationBody struct {
	CustomerName string `json:"customerName" validate:"notempty,max=255" example:"John Doe"              maxLength:"255"`
	Title        string `json:"title"        validate:"notempty,max=255" example:"Request for Product A" maxLength:"255"`
	DueDate      string `json:"dueDate"      validate:"calendardate"     example:"2024-07-15"`
	Type         string `json:"type"         validate:"quotationtype"    example:"Standard"              enums:"Standard,Custom"`
	Status       string `json:"status"       validate:"quotationstatus"  example:"Pending"               enums:"Pending,In Progress,Completed"`
}

// Fields converts the body to domain fields.
func (b *QuotationBody) Fields() domain.QuotationFields {
	return domain.QuotationFields{
		CustomerName: b.CustomerName,
		Title:        b.Title,
		DueDate:      b.DueDate,
		Type:         domain.QuotationType(b.Type),
		Status:       domain.QuotationStatus(b.Status),
	}
}

// QuotationResponse is the wire form of a quotation request.
type QuotationResponse struct {
	ID           int64  `json:"id"           example:"1"`
	CustomerName string `json:"customerName" example:"John Doe"`
	Title        string `json:"title"        example:"Request for Product A"`
	DueDate      string `json:"dueDate"      example:"2024-07-15"`
	Type         string `json:"type"         example:"Standard"`
	Status       string `json:"status"       example:"Pending"`
}

// NewQuotationResponse converts a domain record.
func NewQuotationResponse(q *domain.QuotationRequest) QuotationResponse {
	return QuotationResponse{
		ID:           q.ID,
		CustomerName: q.CustomerName,
		Title:        q.Title,
		DueDate:      q.DueDate,
		Type:         string(q.Type),
		Status:       string(q.Status),
	}
}

// NewQuotationListResponse converts a list of domain records.
// An empty list encodes as [] rather than null.
func NewQuotationListResponse(list []domain.QuotationRequest) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewQuotationResponse(&list[i]))
	}

	return out
}
