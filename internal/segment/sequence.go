// Package segment implements the path engine: parsing raw strings into segment
// sequences, resolving fragments against them, computing relative paths and
// rendering them back to strings.
//
// Sequences are values. No function in this package modifies a Sequence it
// was given; every result owns a fresh Segments slice.
package segment

import "github.com/meigma/flexpath/internal/pathtype"

// Sequence is a path split into its root and segments.
type Sequence struct {
	Variant  pathtype.Variant
	Root     Root
	Segments []string
}

// Empty returns the empty relative sequence for v, which renders as ".".
func Empty(v pathtype.Variant) Sequence {
	return Sequence{Variant: v}
}

// IsAbsolute reports whether s has a root.
func (s Sequence) IsAbsolute() bool {
	return s.Root.IsAbsolute()
}

// Equal reports whether s and o have the same variant, root and segments.
// Segments compare exactly.
func (s Sequence) Equal(o Sequence) bool {
	if s.Variant != o.Variant || !s.Root.Equal(o.Root) || len(s.Segments) != len(o.Segments) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}

// Last returns the final segment, or "" when there is none.
func (s Sequence) Last() string {
	if len(s.Segments) == 0 {
		return ""
	}
	return s.Segments[len(s.Segments)-1]
}

// WithLast returns a copy of s whose final segment is replaced by name.
// s must have at least one segment.
func (s Sequence) WithLast(name string) Sequence {
	segs := make([]string, len(s.Segments))
	copy(segs, s.Segments)
	segs[len(segs)-1] = name
	return Sequence{Variant: s.Variant, Root: s.Root, Segments: segs}
}

// WithRoot returns a copy of s rooted at r.
func (s Sequence) WithRoot(r Root) Sequence {
	segs := make([]string, len(s.Segments))
	copy(segs, s.Segments)
	return Sequence{Variant: s.Variant, Root: r, Segments: segs}
}
