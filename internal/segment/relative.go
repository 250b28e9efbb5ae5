package segment

import (
	"fmt"

	"github.com/meigma/flexpath/internal/pathtype"
)

// Relative returns the relative sequence that leads from from to to: one ".."
// per segment of from past the longest common prefix, followed by the rest of
// to. Both sequences must be of the same variant. Unless they are equal, both
// must also be absolute and, for Windows, under the same drive or share.
// Segments compare exactly.
func Relative(from, to Sequence) (Sequence, error) {
	if from.Variant != to.Variant {
		return Sequence{}, &pathtype.PathError{
			Op:     "relative",
			Path:   to.String(),
			Reason: fmt.Sprintf("%s path relative to %s path", to.Variant, from.Variant),
			Err:    pathtype.ErrVariantMismatch,
		}
	}
	// A path is "." away from itself, whether or not it is absolute.
	if from.Equal(to) {
		return Empty(from.Variant), nil
	}
	for _, s := range []Sequence{from, to} {
		if !s.IsAbsolute() {
			return Sequence{}, &pathtype.PathError{Op: "relative", Path: s.String(), Err: pathtype.ErrNotAbsolute}
		}
	}
	if !from.Root.Equal(to.Root) {
		return Sequence{}, &pathtype.PathError{
			Op:     "relative",
			Path:   to.String(),
			Reason: fmt.Sprintf("root %s differs from %s", to.Root.Prefix(to.Variant), from.Root.Prefix(from.Variant)),
			Err:    pathtype.ErrDifferentRoot,
		}
	}

	k := 0
	for k < len(from.Segments) && k < len(to.Segments) && from.Segments[k] == to.Segments[k] {
		k++
	}

	climb := len(from.Segments) - k
	segs := make([]string, 0, climb+len(to.Segments)-k)
	for range climb {
		segs = append(segs, "..")
	}
	segs = append(segs, to.Segments[k:]...)
	return Sequence{Variant: from.Variant, Segments: segs}, nil
}
