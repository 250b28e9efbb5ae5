package flexpath

import "github.com/meigma/flexpath/internal/pathutil"

// Base returns the last segment of p, or "" when p is a bare root or ".".
func (p FlexPath) Base() string {
	return p.seq.Last()
}

// BaseWithoutExt returns the last segment of p with the first matching
// extension of exts removed. A missing leading dot is added to each extension
// and matching ignores case.
func (p FlexPath) BaseWithoutExt(exts ...string) string {
	return pathutil.TrimExt(p.Base(), exts...)
}

// Extension returns the trailing extensions of the last segment: ".tar.gz"
// for "a.tar.gz". A leading dot is not an extension, so ".bashrc" has none.
func (p FlexPath) Extension() string {
	name, ok := p.name()
	if !ok {
		return ""
	}
	return pathutil.Exts(name)
}

// HasExtension reports whether the last segment of p ends with ext, ignoring
// case. "a.tar.gz" has both ".gz" and ".tar.gz".
func (p FlexPath) HasExtension(ext string) bool {
	name, ok := p.name()
	return ok && pathutil.HasExt(name, ext)
}

// HasExtensions reports whether p has any of exts.
func (p FlexPath) HasExtensions(exts ...string) bool {
	for _, ext := range exts {
		if p.HasExtension(ext) {
			return true
		}
	}
	return false
}

// ChangeExtension replaces every trailing extension of the last segment with
// ext: "a.x.y" becomes "a.z". An empty ext removes them. Paths without a
// named last segment are returned unchanged.
func (p FlexPath) ChangeExtension(ext string) FlexPath {
	name, ok := p.name()
	if !ok {
		return p
	}
	return FlexPath{seq: p.seq.WithLast(pathutil.ChangeExts(name, ext))}
}

// ChangeLastExtension replaces only the final extension of the last segment:
// "a.tar.gz" becomes "a.tar.zst". ext must hold a single extension.
func (p FlexPath) ChangeLastExtension(ext string) (FlexPath, error) {
	name, ok := p.name()
	if !ok {
		return p, nil
	}
	changed, ok := pathutil.ChangeLastExt(name, ext)
	if !ok {
		return FlexPath{}, &PathError{
			Op:     "change extension",
			Path:   ext,
			Reason: "more than one extension",
			Err:    ErrInvalidExtension,
		}
	}
	return FlexPath{seq: p.seq.WithLast(changed)}, nil
}

// name returns the last segment when it names something. A trailing ".."
// does not.
func (p FlexPath) name() (string, bool) {
	last := p.seq.Last()
	if last == "" || last == ".." {
		return "", false
	}
	return last, true
}
