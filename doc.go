// Package flexpath manipulates file paths as text only.
//
// A [FlexPath] is an always-resolved path under a [Variant]: [Common] paths
// use forward slashes and a single root, [Windows] paths accept both slashes,
// render backslashes and understand drive letters (C:), UNC shares
// (\\server\share) and the extended-length forms (\\?\C:, \\?\UNC\server\share).
// [Native] is whichever of the two matches the build target.
//
// Nothing here touches the file system: links are not followed, existence is
// not checked and letter case is never queried.
//
// # Resolution
//
// Constructing a path resolves it. "." segments disappear, ".." removes the
// segment before it, and a ".." that would climb above a root is dropped:
//
//	flexpath.NewCommon("a/b/..").String()        // "a"
//	flexpath.NewCommon("/a/../..").String()      // "/"
//	flexpath.NewCommon("../a").String()          // "../a"
//
// Fragments are applied from left to right and a later absolute fragment
// replaces everything before it:
//
//	p := flexpath.FromCommonFragments("a/b", "c/d", "e/f", "..")
//	p.String() // "a/b/c/d/e"
//
// # Relative paths
//
// [FlexPath.Relative] computes the climbs and descents leading from one
// absolute path to another:
//
//	from := flexpath.NewCommon("/a/b")
//	rel, err := from.Relative(flexpath.NewCommon("/c/d"))
//	rel.String() // "../../c/d"
//
// Windows paths under different drives or shares have no relative path; that
// is reported with [ErrDifferentRoot].
//
// # Normalization
//
// [NormalizePath] resolves a single string without building a FlexPath:
//
//	s, err := flexpath.NormalizePath(`C:/Users//me/./docs/..`, flexpath.Windows)
//	// s == `C:\Users\me`
//
// FlexPath values are immutable and safe for concurrent use.
package flexpath
