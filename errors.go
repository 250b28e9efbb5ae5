package flexpath

import "github.com/meigma/flexpath/internal/pathtype"

// Errors re-exported from internal/pathtype. Operations return them wrapped
// in a *PathError; test for them with errors.Is.
var (
	// ErrMalformedPath is returned when a root, drive or UNC prefix is syntactically invalid.
	ErrMalformedPath = pathtype.ErrMalformedPath

	// ErrVariantMismatch is returned when an operation combines paths of different variants.
	ErrVariantMismatch = pathtype.ErrVariantMismatch

	// ErrNotAbsolute is returned when an operation requires an absolute path.
	ErrNotAbsolute = pathtype.ErrNotAbsolute

	// ErrDifferentRoot is returned when two Windows paths live under different drives or shares.
	ErrDifferentRoot = pathtype.ErrDifferentRoot

	// ErrUnknownVariant is returned when a variant name or value is not recognized.
	ErrUnknownVariant = pathtype.ErrUnknownVariant

	// ErrInvalidExtension is returned when an extension argument holds more than one extension.
	ErrInvalidExtension = pathtype.ErrInvalidExtension
)
