package flexpath

import (
	"github.com/meigma/flexpath/internal/pathtype"
	"github.com/meigma/flexpath/internal/platform"
)

// --- Re-exports from internal/pathtype ---

// Variant identifies the grammar a path is parsed and rendered with.
type Variant = pathtype.Variant

// PathError records a failed path operation and the input that caused it.
type PathError = pathtype.PathError

// Variant constants.
const (
	Common  = pathtype.Common
	Windows = pathtype.Windows
)

// Native returns the variant matching the build target: Windows on Windows,
// Common everywhere else.
func Native() Variant {
	return platform.NativeVariant()
}

// ParseVariant parses a variant name: "common" (or "posix", "unix"),
// "windows", or "native".
func ParseVariant(s string) (Variant, error) {
	return pathtype.ParseVariant(s, Native())
}
