package segment

import (
	"github.com/meigma/flexpath/internal/pathtype"
	"github.com/meigma/flexpath/internal/pathutil"
)

// RootKind classifies what a path is rooted at.
type RootKind uint8

const (
	// RootNone marks a relative path.
	RootNone RootKind = iota
	// RootSlash is a leading separator: the Common root, or the root of the
	// current drive for Windows.
	RootSlash
	// RootDrive is a Windows drive letter such as C:.
	RootDrive
	// RootUNC is a Windows \\server\share prefix.
	RootUNC
)

func (k RootKind) String() string {
	switch k {
	case RootNone:
		return "none"
	case RootSlash:
		return "root"
	case RootDrive:
		return "drive"
	case RootUNC:
		return "unc"
	default:
		return "unknown"
	}
}

// Root describes the prefix of an absolute path.
//
// Drive is always stored upper-case. Verbatim marks the Windows extended-length
// forms \\?\X: and \\?\UNC\server\share; it is kept for rendering only.
type Root struct {
	Kind     RootKind
	Drive    byte
	Server   string
	Share    string
	Verbatim bool
}

// IsAbsolute reports whether the root anchors the path.
func (r Root) IsAbsolute() bool {
	return r.Kind != RootNone
}

// Equal reports whether r and o name the same root. UNC server and share names
// compare case-insensitively, as Windows does.
func (r Root) Equal(o Root) bool {
	if r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case RootDrive:
		return r.Drive == o.Drive
	case RootUNC:
		return pathutil.FoldEqual(r.Server, o.Server) && pathutil.FoldEqual(r.Share, o.Share)
	default:
		return true
	}
}

// Prefix renders the root for variant v, including its trailing separator.
func (r Root) Prefix(v pathtype.Variant) string {
	switch r.Kind {
	case RootSlash:
		return string(v.Separator())
	case RootDrive:
		drive := string([]byte{r.Drive, ':', '\\'})
		if r.Verbatim {
			return `\\?\` + drive
		}
		return drive
	case RootUNC:
		if r.Verbatim {
			return `\\?\UNC\` + r.Server + `\` + r.Share + `\`
		}
		return `\\` + r.Server + `\` + r.Share + `\`
	default:
		return ""
	}
}
