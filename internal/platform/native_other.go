//go:build !windows

package platform

import "github.com/meigma/flexpath/internal/pathtype"

// NativeVariant returns the path variant of the build target.
func NativeVariant() pathtype.Variant {
	return pathtype.Common
}
