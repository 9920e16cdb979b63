package console

import (
	"strings"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// Form is the add/edit modal's input, bound from the submitted HTML form.
type Form struct {
	CustomerName string `form:"customerName"`
	Title        string `form:"title"`
	DueDate      string `form:"dueDate"`
	Type         string `form:"type"`
	Status       string `form:"status"`

	// Errors holds per-field messages keyed by the field's wire name.
	Errors map[string]string `form:"-"`

	// Notice is a form-wide message, e.g. a failed save.
	Notice string `form:"-"`
}

// EmptyForm is the form shown when adding a quotation.
func EmptyForm() Form {
	return Form{}
}

// FormFromRecord pre-populates the form for editing.
func FormFromRecord(q domain.QuotationRequest) Form {
	return Form{
		CustomerName: q.CustomerName,
		Title:        q.Title,
		DueDate:      q.DueDate,
		Type:         string(q.Type),
		Status:       string(q.Status),
	}
}

// Fields converts the input to domain fields. Text inputs are trimmed.
func (f Form) Fields() domain.QuotationFields {
	return domain.QuotationFields{
		CustomerName: strings.TrimSpace(f.CustomerName),
		Title:        strings.TrimSpace(f.Title),
		DueDate:      strings.TrimSpace(f.DueDate),
		Type:         domain.QuotationType(f.Type),
		Status:       domain.QuotationStatus(f.Status),
	}
}

// Validate applies the same rules the API enforces and records every
// violation on the form. Returns false when the form must not be submitted.
func (f *Form) Validate() bool {
	f.Errors = nil

	if err := f.Fields().Validate(); err != nil {
		f.Errors = domain.FieldErrors(err)
		return false
	}

	return true
}

// Reject records a failed save on the form. Field-level server messages
// replace local ones; anything else becomes the form notice.
func (f *Form) Reject(err error) {
	if fields := domain.FieldErrors(err); len(fields) > 0 {
		f.Errors = fields
		f.Notice = "The server rejected the quotation."

		return
	}

	f.Notice = userMessage(err)
}

// HasError reports whether field has a message. Used by templates.
func (f Form) HasError(field string) bool {
	_, ok := f.Errors[field]
	return ok
}

// FieldError returns the message for field. Used by templates.
func (f Form) FieldError(field string) string {
	return f.Errors[field]
}
