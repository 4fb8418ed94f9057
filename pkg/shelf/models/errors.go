package models

import "errors"

// Common errors for item lifecycle operations.
var (
	// ErrNameRequired indicates the supplied item name is missing or blank.
	ErrNameRequired = errors.New("item name is required")

	// ErrItemNotFound indicates the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemRetained indicates the item exists but is still inside the
	// retention hold and may not be deleted yet.
	ErrItemRetained = errors.New("item is still under retention hold")
)
