package segment

import (
	"strings"

	"github.com/meigma/flexpath/internal/pathtype"
)

// String renders s with its variant's canonical separator. The empty relative
// sequence renders as ".".
//
// A relative Windows sequence whose first segment reads like a drive ("C:x")
// is rendered behind ".\" so that parsing the output gives s back.
func (s Sequence) String() string {
	prefix := s.Root.Prefix(s.Variant)
	if len(s.Segments) == 0 {
		if prefix == "" {
			return "."
		}
		return prefix
	}
	if s.Variant == pathtype.Windows && s.Root.Kind == RootNone && looksLikeDrive(s.Segments[0]) {
		prefix = `.\`
	}

	sep := s.Variant.Separator()
	var b strings.Builder
	b.WriteString(prefix)
	for i, seg := range s.Segments {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(seg)
	}
	return b.String()
}

func looksLikeDrive(seg string) bool {
	return len(seg) >= 2 && seg[1] == ':'
}
