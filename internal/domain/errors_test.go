package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quotation",
			id:          "12",
			expectedMsg: `quotation with id "12" not found`,
		},
		{
			name:        "with entity only",
			entity:      "quotation",
			id:          "",
			expectedMsg: "quotation not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestNewQuotationNotFound(t *testing.T) {
	err := NewQuotationNotFound(42)

	assert.True(t, IsNotFound(err))
	assert.Equal(t, `quotation with id "42" not found`, err.Error())
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "dueDate",
			message:     "invalid format",
			expectedMsg: "validation failed for dueDate: invalid format",
		},
		{
			name:        "without field",
			field:       "",
			message:     "general validation error",
			expectedMsg: "validation failed: general validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Run("single violation reads like ValidationError", func(t *testing.T) {
		errs := ValidationErrors{{Field: "title", Message: "title is required"}}

		assert.Equal(t, "validation failed for title: title is required", errs.Error())
		assert.ErrorIs(t, errs, ErrValidation)
	})

	t.Run("multiple violations are sorted", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "type", Message: "bad type"},
			{Field: "customerName", Message: "missing"},
		}

		assert.Equal(t, "validation failed: customerName: missing; type: bad type", errs.Error())
		assert.Equal(t, map[string]string{"type": "bad type", "customerName": "missing"}, errs.Fields())
	})
}

func TestFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected map[string]string
	}{
		{
			name:     "multi-field errors",
			err:      fmt.Errorf("wrapped: %w", ValidationErrors{{Field: "status", Message: "bad"}}),
			expected: map[string]string{"status": "bad"},
		},
		{
			name:     "single field error",
			err:      NewValidationError("id", "must be a positive integer"),
			expected: map[string]string{"id": "must be a positive integer"},
		},
		{
			name:     "validation error without field",
			err:      NewValidationError("", "nope"),
			expected: nil,
		},
		{
			name:     "non validation error",
			err:      ErrNotFound,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FieldErrors(tt.err))
		})
	}
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			service:     "quotation-api",
			reason:      "connection timeout",
			expectedMsg: `service "quotation-api" unavailable: connection timeout`,
		},
		{
			name:        "without reason",
			service:     "mysql",
			reason:      "",
			expectedMsg: `service "mysql" unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnavailableError(tt.service, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrUnavailable)

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.service, unavailable.Service)
			assert.Equal(t, tt.reason, unavailable.Reason)
		})
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("quotation", "1"), IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrValidation, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsValidation with ValidationError", NewValidationError("title", "invalid"), IsValidation, true},
		{"IsValidation with ValidationErrors", ValidationErrors{{Field: "a", Message: "b"}}, IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},
		{"IsValidation with nil", nil, IsValidation, false},

		{"IsUnavailable with UnavailableError", NewUnavailableError("db", "timeout"), IsUnavailable, true},
		{"IsUnavailable with wrapped", fmt.Errorf("wrapped: %w", ErrUnavailable), IsUnavailable, true},
		{"IsUnavailable with other error", ErrNotFound, IsUnavailable, false},
		{"IsUnavailable with nil", nil, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	original := NewNotFoundError("quotation", "123")
	wrapped := fmt.Errorf("layer3: %w", fmt.Errorf("layer2: %w", fmt.Errorf("layer1: %w", original)))

	assert.True(t, IsNotFound(wrapped))

	var notFound *NotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "123", notFound.ID)
}
