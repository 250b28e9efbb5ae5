package segment

import (
	"fmt"

	"github.com/meigma/flexpath/internal/pathtype"
)

// Apply resolves fragment against base.
//
// An absolute fragment replaces everything resolved so far. "." segments are
// skipped. ".." pops the last real segment; with nothing to pop it is dropped
// at a root and kept as a leading climb in a relative sequence.
func Apply(base, fragment Sequence) (Sequence, error) {
	if base.Variant != fragment.Variant {
		return Sequence{}, &pathtype.PathError{
			Op:     "resolve",
			Path:   fragment.String(),
			Reason: fmt.Sprintf("%s fragment against %s base", fragment.Variant, base.Variant),
			Err:    pathtype.ErrVariantMismatch,
		}
	}

	out := Sequence{Variant: base.Variant, Root: base.Root}
	var segs []string
	if fragment.IsAbsolute() {
		out.Root = fragment.Root
		segs = make([]string, 0, len(fragment.Segments))
	} else {
		segs = make([]string, 0, len(base.Segments)+len(fragment.Segments))
		segs = append(segs, base.Segments...)
	}

	absolute := out.Root.IsAbsolute()
	for _, s := range fragment.Segments {
		switch s {
		case ".":
		case "..":
			if n := len(segs); n > 0 && segs[n-1] != ".." {
				segs = segs[:n-1]
			} else if !absolute {
				segs = append(segs, "..")
			}
		default:
			segs = append(segs, s)
		}
	}
	out.Segments = segs
	return out, nil
}

// Resolve parses raw under base's variant and applies it to base.
func Resolve(base Sequence, raw string) (Sequence, error) {
	fragment, err := Parse(raw, base.Variant)
	if err != nil {
		return Sequence{}, err
	}
	return Apply(base, fragment)
}

// ResolveAll folds Resolve over fragments from left to right, starting at base.
// A later absolute fragment discards everything before it.
func ResolveAll(base Sequence, fragments ...string) (Sequence, error) {
	seq := base
	for _, raw := range fragments {
		next, err := Resolve(seq, raw)
		if err != nil {
			return Sequence{}, err
		}
		seq = next
	}
	if len(fragments) == 0 {
		// Copy so callers never share base's slice.
		return base.WithRoot(base.Root), nil
	}
	return seq, nil
}
