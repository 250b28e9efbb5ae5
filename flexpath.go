package flexpath

import (
	"fmt"

	"github.com/meigma/flexpath/internal/segment"
)

// FlexPath is a resolved textual path under a Variant.
//
// The zero value is the empty relative Common path, which renders as ".".
// Every method returns a new value; a FlexPath is never modified after
// construction.
type FlexPath struct {
	seq segment.Sequence
}

// New parses and resolves raw under variant v.
func New(raw string, v Variant) (FlexPath, error) {
	seq, err := segment.Resolve(segment.Empty(v), raw)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// MustNew is like New but panics if raw cannot be parsed.
func MustNew(raw string, v Variant) FlexPath {
	p, err := New(raw, v)
	if err != nil {
		panic(err)
	}
	return p
}

// NewCommon resolves raw as a Common path. Common paths cannot be malformed.
func NewCommon(raw string) FlexPath {
	return MustNew(raw, Common)
}

// NewWindows resolves raw as a Windows path.
func NewWindows(raw string) (FlexPath, error) {
	return New(raw, Windows)
}

// NewNative resolves raw under the variant of the build target.
func NewNative(raw string) (FlexPath, error) {
	return New(raw, Native())
}

// FromFragments resolves fragments from left to right, starting from the
// empty relative path. A later absolute fragment discards everything before
// it. No fragments yield ".".
func FromFragments(fragments []string, v Variant) (FlexPath, error) {
	seq, err := segment.ResolveAll(segment.Empty(v), fragments...)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// FromCommonFragments is FromFragments for the Common variant.
func FromCommonFragments(fragments ...string) FlexPath {
	p, err := FromFragments(fragments, Common)
	if err != nil {
		panic(err)
	}
	return p
}

// FromNativeFragments is FromFragments for the variant of the build target.
func FromNativeFragments(fragments ...string) (FlexPath, error) {
	return FromFragments(fragments, Native())
}

// Variant returns the variant p is parsed and rendered with.
func (p FlexPath) Variant() Variant {
	return p.seq.Variant
}

// IsAbsolute reports whether p has a root, drive or share.
func (p FlexPath) IsAbsolute() bool {
	return p.seq.IsAbsolute()
}

// String renders p with its variant's separator.
func (p FlexPath) String() string {
	return p.seq.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p FlexPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Segments returns a copy of the segments of p, without its root.
func (p FlexPath) Segments() []string {
	if len(p.seq.Segments) == 0 {
		return nil
	}
	segs := make([]string, len(p.seq.Segments))
	copy(segs, p.seq.Segments)
	return segs
}

// Equal reports whether p and o are the same path. Drive letters and UNC
// names compare case-insensitively; segments compare exactly.
func (p FlexPath) Equal(o FlexPath) bool {
	return p.seq.Equal(o.seq)
}

// Resolve resolves fragment against p. The fragment is parsed with p's
// variant.
func (p FlexPath) Resolve(fragment string) (FlexPath, error) {
	seq, err := segment.Resolve(p.seq, fragment)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// ResolveAll resolves fragments against p from left to right.
func (p FlexPath) ResolveAll(fragments ...string) (FlexPath, error) {
	seq, err := segment.ResolveAll(p.seq, fragments...)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// Join resolves other against p. Both must share a variant.
func (p FlexPath) Join(other FlexPath) (FlexPath, error) {
	seq, err := segment.Apply(p.seq, other.seq)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// Relative returns the relative path leading from p to other, such that
// p.Resolve(rel.String()) equals other. Identical paths yield ".", even
// when relative.
//
// Otherwise both paths must be absolute and of the same variant; Windows
// paths must also share their drive or UNC share.
func (p FlexPath) Relative(other FlexPath) (FlexPath, error) {
	seq, err := segment.Relative(p.seq, other.seq)
	if err != nil {
		return FlexPath{}, err
	}
	return FlexPath{seq: seq}, nil
}

// RelativeTo is Relative for a raw target parsed with p's variant.
func (p FlexPath) RelativeTo(raw string) (FlexPath, error) {
	other, err := New(raw, p.Variant())
	if err != nil {
		return FlexPath{}, err
	}
	return p.Relative(other)
}

// Verbatim returns p in the Windows extended-length form, \\?\C:\... or
// \\?\UNC\server\share\.... p must be a Windows path under a drive or share.
func (p FlexPath) Verbatim() (FlexPath, error) {
	if p.Variant() != Windows {
		return FlexPath{}, &PathError{
			Op:     "verbatim",
			Path:   p.String(),
			Reason: fmt.Sprintf("extended-length form needs a windows path, have %s", p.Variant()),
			Err:    ErrVariantMismatch,
		}
	}
	root := p.seq.Root
	switch root.Kind {
	case segment.RootDrive, segment.RootUNC:
		root.Verbatim = true
		return FlexPath{seq: p.seq.WithRoot(root)}, nil
	default:
		return FlexPath{}, &PathError{
			Op:     "verbatim",
			Path:   p.String(),
			Reason: "extended-length form needs a drive or UNC share",
			Err:    ErrNotAbsolute,
		}
	}
}
