package pathtype

import (
	"errors"
	"strconv"
)

// Sentinel errors for path operations.
var (
	// ErrMalformedPath is returned when a root, drive or UNC prefix is syntactically invalid.
	ErrMalformedPath = errors.New("flexpath: malformed path")

	// ErrVariantMismatch is returned when an operation combines paths of different variants.
	ErrVariantMismatch = errors.New("flexpath: variant mismatch")

	// ErrNotAbsolute is returned when an operation requires an absolute path.
	ErrNotAbsolute = errors.New("flexpath: path is not absolute")

	// ErrDifferentRoot is returned when two Windows paths live under different drives or shares.
	ErrDifferentRoot = errors.New("flexpath: paths have different roots")

	// ErrUnknownVariant is returned when a variant name or value is not recognized.
	ErrUnknownVariant = errors.New("flexpath: unknown variant")

	// ErrInvalidExtension is returned when an extension argument is not usable.
	ErrInvalidExtension = errors.New("flexpath: invalid extension")
)

// PathError records a failed path operation and the input that caused it.
type PathError struct {
	Op     string
	Path   string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	if e == nil {
		return "(*PathError)(nil)"
	}
	msg := e.Op + " " + strconv.Quote(e.Path) + ": " + e.Err.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}
