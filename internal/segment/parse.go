package segment

import (
	"strings"

	"github.com/meigma/flexpath/internal/pathtype"
)

// Parse splits raw into a Sequence under variant v. It only tokenizes: "."
// and ".." segments are kept as they appear. Empty segments produced by
// repeated or trailing separators are dropped.
func Parse(raw string, v pathtype.Variant) (Sequence, error) {
	switch v {
	case pathtype.Common:
		seq := Sequence{Variant: v, Segments: split(raw, v)}
		if raw != "" && raw[0] == '/' {
			seq.Root = Root{Kind: RootSlash}
		}
		return seq, nil
	case pathtype.Windows:
		return parseWindows(raw)
	default:
		return Sequence{}, &pathtype.PathError{Op: "parse", Path: raw, Err: pathtype.ErrUnknownVariant}
	}
}

func parseWindows(raw string) (Sequence, error) {
	const v = pathtype.Windows

	seq := Sequence{Variant: v}
	rest := raw
	switch {
	case len(raw) >= 4 && v.IsSeparator(raw[0]) && v.IsSeparator(raw[1]) && raw[2] == '?' && v.IsSeparator(raw[3]):
		return parseVerbatim(raw)
	case len(raw) >= 2 && v.IsSeparator(raw[0]) && v.IsSeparator(raw[1]):
		root, segs, reason := parseUNC(raw[2:])
		if reason != "" {
			return Sequence{}, malformed(raw, reason)
		}
		seq.Root = root
		seq.Segments = segs
		return seq, nil
	case raw != "" && v.IsSeparator(raw[0]):
		// Checked before drives: \: is a rooted segment ":", not a drive.
		seq.Root = Root{Kind: RootSlash}
	case len(raw) >= 2 && raw[1] == ':':
		if !isLetter(raw[0]) {
			return Sequence{}, malformed(raw, "drive letter must be an ASCII letter")
		}
		seq.Root = Root{Kind: RootDrive, Drive: upper(raw[0])}
		rest = raw[2:]
	}
	seq.Segments = split(rest, v)
	return seq, nil
}

// parseVerbatim handles the extended-length forms \\?\X:... and
// \\?\UNC\server\share....
func parseVerbatim(raw string) (Sequence, error) {
	const v = pathtype.Windows

	rest := raw[4:]
	if len(rest) >= 3 && strings.EqualFold(rest[:3], "UNC") && (len(rest) == 3 || v.IsSeparator(rest[3])) {
		root, segs, reason := parseUNC(rest[3:])
		if reason != "" {
			return Sequence{}, malformed(raw, reason)
		}
		root.Verbatim = true
		return Sequence{Variant: v, Root: root, Segments: segs}, nil
	}
	if len(rest) >= 2 && rest[1] == ':' {
		if !isLetter(rest[0]) {
			return Sequence{}, malformed(raw, "drive letter must be an ASCII letter")
		}
		return Sequence{
			Variant:  v,
			Root:     Root{Kind: RootDrive, Drive: upper(rest[0]), Verbatim: true},
			Segments: split(rest[2:], v),
		}, nil
	}
	return Sequence{}, malformed(raw, "extended-length prefix must name a drive or UNC share")
}

// parseUNC reads server and share from s, the text following the UNC
// prefix. A non-empty reason reports a malformed prefix.
func parseUNC(s string) (Root, []string, string) {
	parts := split(s, pathtype.Windows)
	switch len(parts) {
	case 0:
		return Root{}, nil, "UNC prefix is missing its server"
	case 1:
		return Root{}, nil, "UNC prefix is missing its share"
	}
	if parts[0] == "?" {
		return Root{}, nil, "UNC server ? is reserved for the extended-length prefix"
	}
	return Root{Kind: RootUNC, Server: parts[0], Share: parts[1]}, parts[2:], ""
}

func split(s string, v pathtype.Variant) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || v.IsSeparator(s[i]) {
			if i > start {
				segs = append(segs, s[start:i])
			}
			start = i + 1
		}
	}
	return segs
}

func malformed(raw, reason string) error {
	return &pathtype.PathError{Op: "parse", Path: raw, Reason: reason, Err: pathtype.ErrMalformedPath}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
