package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookup errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgCrewNotFound = "crew not found"
	ErrMsgShipNotFound = "ship not found"

	// Recipe errors
	ErrMsgCyclicRecipe = "cyclic recipe"

	// Catalog errors
	ErrMsgInvalidCatalog     = "invalid catalog"
	ErrMsgDuplicateSymbol    = "duplicate symbol"
	ErrMsgCatalogUnavailable = "catalog unavailable"

	// Profile errors
	ErrMsgInvalidProfile = "invalid profile"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrCrewNotFound = errors.New(ErrMsgCrewNotFound)
	ErrShipNotFound = errors.New(ErrMsgShipNotFound)

	ErrCyclicRecipe = errors.New(ErrMsgCyclicRecipe)

	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
	ErrDuplicateSymbol    = errors.New(ErrMsgDuplicateSymbol)
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	ErrInvalidProfile = errors.New(ErrMsgInvalidProfile)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
