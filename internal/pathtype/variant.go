// Package pathtype defines shared types used across the flexpath package and its
// internal packages. This avoids circular imports between flexpath and
// internal/segment.
package pathtype

import (
	"fmt"
	"strings"
)

// Variant identifies the path grammar a path is parsed and rendered with.
type Variant uint8

const (
	// Common is the POSIX-like grammar: forward slashes and a single root.
	Common Variant = iota
	// Windows accepts both slashes, renders backslashes and understands drive
	// letters and UNC shares.
	Windows
)

func (v Variant) String() string {
	switch v {
	case Common:
		return "common"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	return v == Common || v == Windows
}

// Separator returns the separator used when rendering paths.
func (v Variant) Separator() byte {
	if v == Windows {
		return '\\'
	}
	return '/'
}

// IsSeparator reports whether c separates segments on input.
func (v Variant) IsSeparator(c byte) bool {
	if v == Windows {
		return c == '/' || c == '\\'
	}
	return c == '/'
}

// ParseVariant parses a variant name. "native" resolves to the given native
// variant so the caller decides what the host platform is.
func ParseVariant(s string, native Variant) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common", "posix", "unix":
		return Common, nil
	case "windows", "win":
		return Windows, nil
	case "native", "":
		return native, nil
	default:
		return 0, &PathError{Op: "parse variant", Path: s, Err: ErrUnknownVariant}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &PathError{Op: "marshal variant", Path: v.String(), Err: ErrUnknownVariant}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The name "native" is not
// accepted here since a decoded value must not depend on the decoding host.
func (v *Variant) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "common", "posix", "unix":
		*v = Common
	case "windows", "win":
		*v = Windows
	default:
		return &PathError{Op: "unmarshal variant", Path: string(text), Err: ErrUnknownVariant}
	}
	return nil
}
