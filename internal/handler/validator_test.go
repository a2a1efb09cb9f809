package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ExportParams(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		params  ExportParams
		wantErr bool
	}{
		// Valid sheets and formats
		{"crew csv", ExportParams{Sheet: "crew", Format: FormatCSV}, false},
		{"equipment json", ExportParams{Sheet: "equipment", Format: FormatJSON}, false},
		{"mixed case sheet", ExportParams{Sheet: "Ships", Format: FormatCSV}, false},

		// Missing values
		{"empty sheet", ExportParams{Sheet: "", Format: FormatCSV}, true},
		{"empty format", ExportParams{Sheet: "items", Format: ""}, true},

		// Invalid values
		{"unknown sheet", ExportParams{Sheet: "officers", Format: FormatCSV}, true},
		{"unknown format", ExportParams{Sheet: "items", Format: "xlsx"}, true},
		{"format is case sensitive", ExportParams{Sheet: "items", Format: "CSV"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("all fields invalid", func(t *testing.T) {
		err := v.ValidateStruct(ExportParams{Sheet: "officers", Format: "xlsx"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, map[string]string{
			"sheet":  "Must be one of: crew, items, ships, equipment",
			"format": "Must be one of: json, csv",
		}, fields)
	})

	t.Run("required field", func(t *testing.T) {
		err := v.ValidateStruct(ExportParams{Format: FormatCSV})
		assert.Equal(t, "This field is required", FormatValidationError(err)["sheet"])
	})

	t.Run("non-validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
