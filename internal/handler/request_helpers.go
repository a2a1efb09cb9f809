package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/export"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/profile"
)

// ProfileDecoder turns an uploaded save into a profile
type ProfileDecoder interface {
	DecodeReader(ctx context.Context, r io.Reader) (*domain.Profile, *profile.Summary, error)
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ExportParams selects the sheet and output format of an export
type ExportParams struct {
	Sheet  string `validate:"required,sheet"`
	Format string `validate:"required,oneof=json csv"`
}

// decodeProfile reads the request body as a player save. If it returns
// false the response has already been written.
func decodeProfile(w http.ResponseWriter, r *http.Request, profiles ProfileDecoder) (*domain.Profile, *profile.Summary, bool) {
	p, sum, err := profiles.DecodeReader(r.Context(), r.Body)
	if err != nil {
		respondServiceError(w, r, LogMsgDecodeFailed, err)
		return nil, nil, false
	}
	return p, sum, true
}

// parseExportParams reads the sheet from the route and the format from the
// query string. If it returns false the response has already been written.
func parseExportParams(w http.ResponseWriter, r *http.Request) (ExportParams, bool) {
	sheet := strings.ToLower(chi.URLParam(r, "sheet"))

	params := ExportParams{
		Sheet:  sheet,
		Format: strings.ToLower(GetOptionalQueryParam(r, "format", DefaultFormat(sheet))),
	}

	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Debug("Invalid export parameters", "sheet", params.Sheet, "format", params.Format)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return ExportParams{}, false
	}
	return params, true
}

// DefaultFormat is the format a sheet is served in when the request names
// none. The equipment sheet carries its exclusions, so it defaults to JSON.
func DefaultFormat(sheet string) string {
	if strings.EqualFold(sheet, export.SheetEquipment) {
		return FormatJSON
	}
	return FormatCSV
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// falling back to defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
