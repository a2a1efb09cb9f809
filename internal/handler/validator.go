package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CrewPlanner_Go/internal/export"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("sheet", validateSheet)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "sheet":
			errs[field] = fmt.Sprintf("Must be one of: %s", strings.Join(SheetNames(), ", "))
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidSheets maps lowercased sheet names to their display names
var ValidSheets = map[string]string{
	strings.ToLower(export.SheetCrew):      export.SheetCrew,
	strings.ToLower(export.SheetShips):     export.SheetShips,
	strings.ToLower(export.SheetItems):     export.SheetItems,
	strings.ToLower(export.SheetEquipment): export.SheetEquipment,
}

// SheetNames lists the accepted sheet names in workbook order
func SheetNames() []string {
	return []string{
		strings.ToLower(export.SheetCrew),
		strings.ToLower(export.SheetItems),
		strings.ToLower(export.SheetShips),
		strings.ToLower(export.SheetEquipment),
	}
}

// Custom validation function for sheet names
func validateSheet(fl validator.FieldLevel) bool {
	_, ok := ValidSheets[strings.ToLower(fl.Field().String())]
	return ok
}
