// Package domain contains core business entities and rules.
package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// QuotationEntity is the entity name used in domain errors.
const QuotationEntity = "quotation"

// DueDateLayout is the calendar date format accepted for due dates.
const DueDateLayout = "2006-01-02"

// MaxTextLength bounds customerName and title, in characters. It matches the
// width of the relational store's columns.
const MaxTextLength = 255

// QuotationType classifies a quotation request.
type QuotationType string

// Quotation types.
const (
	QuotationTypeStandard QuotationType = "Standard"
	QuotationTypeCustom   QuotationType = "Custom"
)

// AllQuotationTypes returns every valid type in display order.
func AllQuotationTypes() []QuotationType {
	return []QuotationType{QuotationTypeStandard, QuotationTypeCustom}
}

// Valid reports whether t is a known quotation type.
func (t QuotationType) Valid() bool {
	switch t {
	case QuotationTypeStandard, QuotationTypeCustom:
		return true
	default:
		return false
	}
}

// QuotationStatus is the processing state of a quotation request.
type QuotationStatus string

// Quotation statuses.
const (
	QuotationStatusPending    QuotationStatus = "Pending"
	QuotationStatusInProgress QuotationStatus = "In Progress"
	QuotationStatusCompleted  QuotationStatus = "Completed"
)

// AllQuotationStatuses returns every valid status in display order.
func AllQuotationStatuses() []QuotationStatus {
	return []QuotationStatus{
		QuotationStatusPending,
		QuotationStatusInProgress,
		QuotationStatusCompleted,
	}
}

// Valid reports whether s is a known quotation status.
func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusInProgress, QuotationStatusCompleted:
		return true
	default:
		return false
	}
}

// QuotationFields holds the mutable attributes of a quotation request.
// Create and update both take a complete set; there is no partial merge.
type QuotationFields struct {
	CustomerName string
	Title        string
	DueDate      string
	Type         QuotationType
	Status       QuotationStatus
}

// QuotationRequest is a customer's quotation inquiry.
// ID is assigned by the store on creation and never changes afterwards.
type QuotationRequest struct {
	ID int64
	QuotationFields
}

// Validate checks every field and returns all violations as ValidationErrors.
// Returns nil when the fields may be persisted.
func (f QuotationFields) Validate() error {
	var errs ValidationErrors

	if fe := validateText("customerName", "customer name", f.CustomerName); fe != nil {
		errs = append(errs, fe)
	}

	if fe := validateText("title", "title", f.Title); fe != nil {
		errs = append(errs, fe)
	}

	switch {
	case f.DueDate == "":
		errs = append(errs, &ValidationError{Field: "dueDate", Message: "due date is required"})
	case !IsCalendarDate(f.DueDate):
		errs = append(errs, &ValidationError{
			Field:   "dueDate",
			Message: "due date must be a valid date (YYYY-MM-DD)",
			Value:   f.DueDate,
		})
	}

	if !f.Type.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "type",
			Message: "type must be one of: Standard, Custom",
			Value:   string(f.Type),
		})
	}

	if !f.Status.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "status",
			Message: "status must be one of: Pending, In Progress, Completed",
			Value:   string(f.Status),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsCalendarDate reports whether v is a real calendar date in DueDateLayout.
func IsCalendarDate(v string) bool {
	_, err := time.Parse(DueDateLayout, v)
	return err == nil
}

func validateText(field, label, value string) *ValidationError {
	switch {
	case strings.TrimSpace(value) == "":
		return &ValidationError{Field: field, Message: label + " is required"}
	case utf8.RuneCountInString(value) > MaxTextLength:
		return &ValidationError{
			Field:   field,
			Message: label + " must be at most " + strconv.Itoa(MaxTextLength) + " characters",
		}
	default:
		return nil
	}
}

// ParseQuotationID parses a path identifier. Only positive integers written
// as plain decimal digits are valid, so "+1" and "01" are rejected.
func ParseQuotationID(raw string) (int64, error) {
	if raw == "" || raw[0] < '1' || raw[0] > '9' {
		return 0, NewValidationErrorWithValue("id", "must be a positive integer", raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationErrorWithValue("id", "must be a positive integer", raw)
	}

	return id, nil
}

// FormatID renders an identifier for error messages and logs.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// NewQuotationNotFound returns the not found error for the given id.
func NewQuotationNotFound(id int64) error {
	return NewNotFoundError(QuotationEntity, FormatID(id))
}
