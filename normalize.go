package flexpath

import "github.com/meigma/flexpath/internal/segment"

// NormalizePath resolves raw under variant v and renders it back. It is the
// same as New(raw, v) followed by String, without keeping the FlexPath.
//
// Normalization is idempotent: normalizing its own output returns it
// unchanged.
func NormalizePath(raw string, v Variant) (string, error) {
	seq, err := segment.Resolve(segment.Empty(v), raw)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// NormalizeCommon normalizes raw as a Common path.
func NormalizeCommon(raw string) string {
	s, err := NormalizePath(raw, Common)
	if err != nil {
		panic(err)
	}
	return s
}

// NormalizeWindows normalizes raw as a Windows path.
func NormalizeWindows(raw string) (string, error) {
	return NormalizePath(raw, Windows)
}

// NormalizeNative normalizes raw under the variant of the build target.
func NormalizeNative(raw string) (string, error) {
	return NormalizePath(raw, Native())
}
