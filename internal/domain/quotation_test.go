package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() QuotationFields {
	return QuotationFields{
		CustomerName: "A",
		Title:        "T",
		DueDate:      "2024-07-15",
		Type:         QuotationTypeStandard,
		Status:       QuotationStatusPending,
	}
}

func TestQuotationFields_Validate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*QuotationFields)
		expectedFields []string
	}{
		{
			name:   "valid fields",
			mutate: func(*QuotationFields) {},
		},
		{
			name:           "blank customer name",
			mutate:         func(f *QuotationFields) { f.CustomerName = "   " },
			expectedFields: []string{"customerName"},
		},
		{
			name:           "empty title",
			mutate:         func(f *QuotationFields) { f.Title = "" },
			expectedFields: []string{"title"},
		},
		{
			name:           "missing due date",
			mutate:         func(f *QuotationFields) { f.DueDate = "" },
			expectedFields: []string{"dueDate"},
		},
		{
			name:           "impossible due date",
			mutate:         func(f *QuotationFields) { f.DueDate = "2024-02-30" },
			expectedFields: []string{"dueDate"},
		},
		{
			name:           "due date in wrong layout",
			mutate:         func(f *QuotationFields) { f.DueDate = "15/07/2024" },
			expectedFields: []string{"dueDate"},
		},
		{
			name:           "unknown type",
			mutate:         func(f *QuotationFields) { f.Type = "Premium" },
			expectedFields: []string{"type"},
		},
		{
			name:           "status is case sensitive",
			mutate:         func(f *QuotationFields) { f.Status = "in progress" },
			expectedFields: []string{"status"},
		},
		{
			name:   "customer name at the length limit",
			mutate: func(f *QuotationFields) { f.CustomerName = strings.Repeat("a", MaxTextLength) },
		},
		{
			name:   "multi-byte title at the length limit",
			mutate: func(f *QuotationFields) { f.Title = strings.Repeat("é", MaxTextLength) },
		},
		{
			name:           "customer name over the length limit",
			mutate:         func(f *QuotationFields) { f.CustomerName = strings.Repeat("a", MaxTextLength+1) },
			expectedFields: []string{"customerName"},
		},
		{
			name:           "title over the length limit",
			mutate:         func(f *QuotationFields) { f.Title = strings.Repeat("t", 300) },
			expectedFields: []string{"title"},
		},
		{
			name: "every field invalid",
			mutate: func(f *QuotationFields) {
				*f = QuotationFields{}
			},
			expectedFields: []string{"customerName", "title", "dueDate", "type", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			err := fields.Validate()
			if len(tt.expectedFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			got := FieldErrors(err)
			assert.Len(t, got, len(tt.expectedFields))
			for _, f := range tt.expectedFields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestQuotationEnums(t *testing.T) {
	for _, typ := range AllQuotationTypes() {
		assert.True(t, typ.Valid(), string(typ))
	}
	for _, status := range AllQuotationStatuses() {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, QuotationType("").Valid())
	assert.False(t, QuotationStatus("Done").Valid())
}

func TestParseQuotationID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "9007199254740993", want: 9007199254740993},
		{raw: "0", wantErr: true},
		{raw: "-4", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999", wantErr: true},
		{raw: "+1", wantErr: true},
		{raw: "01", wantErr: true},
		{raw: " 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseQuotationID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestQuotationFields_Validate_LengthMessage(t *testing.T) {
	fields := validFields()
	fields.CustomerName = strings.Repeat("a", MaxTextLength+1)

	assert.Equal(t, map[string]string{"customerName": "customer name must be at most 255 characters"},
		FieldErrors(fields.Validate()))
}
