// Package pathutil provides helpers for the final segment of a path: extension
// inspection and replacement, and case-folded comparison.
package pathutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeExt adds the leading dot to ext if it is missing.
// The empty extension stays empty.
func NormalizeExt(ext string) string {
	if ext == "" || ext[0] == '.' {
		return ext
	}
	return "." + ext
}

// Exts returns the run of trailing extensions of name: ".tar.gz" for
// "a.tar.gz". Leading dots belong to the stem, so ".bashrc" has none, and an
// empty extension ends the run ("a." has none).
func Exts(name string) string {
	start := len(name)
	for {
		i := strings.LastIndexByte(name[:start], '.')
		if !isExtStart(name, i, start) {
			return name[start:]
		}
		start = i
	}
}

// LastExt returns the final extension of name: ".gz" for "a.tar.gz".
func LastExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if !isExtStart(name, i, len(name)) {
		return ""
	}
	return name[i:]
}

func isExtStart(name string, i, end int) bool {
	return i >= 0 && i < end-1 && strings.Trim(name[:i], ".") != ""
}

// ChangeExts replaces every trailing extension of name with ext.
func ChangeExts(name, ext string) string {
	return name[:len(name)-len(Exts(name))] + NormalizeExt(ext)
}

// ChangeLastExt replaces the final extension of name with ext. It reports
// false when ext holds more than one extension.
func ChangeLastExt(name, ext string) (string, bool) {
	ext = NormalizeExt(ext)
	if strings.Count(ext, ".") > 1 {
		return "", false
	}
	return name[:len(name)-len(LastExt(name))] + ext, true
}

// HasExt reports whether the extensions of name end with ext, ignoring case.
func HasExt(name, ext string) bool {
	ext = NormalizeExt(ext)
	if ext == "" {
		return false
	}
	_, ok := foldSuffix(Exts(name), ext)
	return ok
}

// TrimExt removes the first of exts that ends the extensions of name,
// ignoring case. name is returned unchanged when none matches.
func TrimExt(name string, exts ...string) string {
	all := Exts(name)
	for _, ext := range exts {
		ext = NormalizeExt(ext)
		if ext == "" {
			continue
		}
		if n, ok := foldSuffix(all, ext); ok {
			return name[:len(name)-n]
		}
	}
	return name
}

// FoldEqual compares a and b under Unicode case folding.
func FoldEqual(a, b string) bool {
	if a == b {
		return true
	}
	// A Caser keeps state between calls, so each comparison gets its own.
	return cases.Fold().String(a) == cases.Fold().String(b)
}

// foldSuffix reports whether the extension run s ends with the extensions in
// suffix under case folding, and the byte length of the matching tail of s.
// suffix must start with a dot. Folding can change byte lengths, so the tail
// is cut at the dot that starts as many extensions as suffix holds.
func foldSuffix(s, suffix string) (int, bool) {
	dots := strings.Count(suffix, ".")
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '.' {
			continue
		}
		if dots--; dots == 0 {
			return len(s) - i, FoldEqual(s[i:], suffix)
		}
	}
	return 0, false
}
