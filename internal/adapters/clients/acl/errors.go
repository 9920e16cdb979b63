package acl

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/jsamuelsen/quotation-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// Error codes sent by the quotation API.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeBadRequest  = "BAD_REQUEST"
	CodeNotFound    = "NOT_FOUND"
	CodeTimeout     = "TIMEOUT"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// errorBody is the API's error envelope.
type errorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// text returns the server message, or the status text when it sent none.
func (e *errorBody) text(status int) string {
	if e != nil && e.Message != "" {
		return e.Message
	}

	if t := http.StatusText(status); t != "" {
		return t
	}

	return fmt.Sprintf("status %d", status)
}

// mapStatus translates a failed response into a domain error.
// id is the quotation the call addressed, or 0 for collection calls.
func mapStatus(service string, status int, body *errorBody, id int64) error {
	message := body.text(status)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if body != nil && len(body.Details) > 0 {
			return validationFromDetails(body.Details)
		}

		return domain.NewValidationError("", message)

	case status == http.StatusNotFound:
		if id > 0 {
			return domain.NewQuotationNotFound(id)
		}

		return domain.NewNotFoundError(domain.QuotationEntity, "")

	case status == http.StatusGatewayTimeout || (body != nil && body.Code == CodeTimeout):
		return domain.NewUnavailableError(service, "request timed out")

	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s (status %d)", message, status))
	}
}

// validationFromDetails builds one violation per field, ordered by field name.
func validationFromDetails(details map[string]string) error {
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	errs := make(domain.ValidationErrors, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, &domain.ValidationError{Field: f, Message: details[f]})
	}

	return errs
}

// mapClientError translates a call that produced no response.
func mapClientError(service, operation string, err error) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}
