package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/flexpath/internal/pathtype"
)

func mustResolve(t *testing.T, v pathtype.Variant, fragments ...string) Sequence {
	t.Helper()

	seq, err := ResolveAll(Empty(v), fragments...)
	require.NoError(t, err)
	return seq
}

func TestResolveAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		variant   pathtype.Variant
		fragments []string
		want      string
	}{
		{"no fragments", pathtype.Common, nil, "."},
		{"parent pops", pathtype.Common, []string{"a/b", ".."}, "a"},
		{"inline parent", pathtype.Common, []string{"a/b/.."}, "a"},
		{"separate fragments", pathtype.Common, []string{"a", "b", ".."}, "a"},
		{"fold order", pathtype.Common, []string{"a/b", "c/d", "e/f", ".."}, "a/b/c/d/e"},
		{"absolute wins", pathtype.Common, []string{"/c", "/a/b"}, "/a/b"},
		{"trailing separator", pathtype.Common, []string{"a/b/"}, "a/b"},
		{"empty segments", pathtype.Common, []string{"a//b"}, "a/b"},
		{"dot skipped", pathtype.Common, []string{"./a/./b/."}, "a/b"},
		{"leading climb", pathtype.Common, []string{".."}, ".."},
		{"climbs accumulate", pathtype.Common, []string{"../../a/.."}, "../.."},
		{"climb after pop", pathtype.Common, []string{"a", "../.."}, ".."},
		{"climb stops at root", pathtype.Common, []string{"/a", "../.."}, "/"},
		{"root parent", pathtype.Common, []string{"/.."}, "/"},
		{"everything cancels", pathtype.Common, []string{"a/b", "../.."}, "."},

		{"windows unc", pathtype.Windows, []string{"foo", `\\Whack////a//Box`, "..", "Box"}, `\\Whack\a\Box`},
		{"windows verbatim drive climb", pathtype.Windows, []string{`\\?\X:`, ".."}, `\\?\X:\`},
		{"windows verbatim drive trailing climb", pathtype.Windows, []string{`\\?\X:\`, ".."}, `\\?\X:\`},
		{"windows verbatim unc", pathtype.Windows, []string{`\\?\UNC\Whack\a\Box`, "..", "Box"}, `\\?\UNC\Whack\a\Box`},
		{"windows drive join", pathtype.Windows, []string{"C:/", "a"}, `C:\a`},
		{"windows other drive wins", pathtype.Windows, []string{"C:/", "D:/"}, `D:\`},
		{"windows drive keeps case", pathtype.Windows, []string{"D:/a"}, `D:\a`},
		{"windows absolute after relative", pathtype.Windows, []string{"a", "C:/a///f//b"}, `C:\a\f\b`},
		{"windows current drive root", pathtype.Windows, []string{`C:\a`, `\b`}, `\b`},
		{"windows unc root climb", pathtype.Windows, []string{`\\srv\share`, `..\..`}, `\\srv\share\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq := mustResolve(t, tt.variant, tt.fragments...)
			assert.Equal(t, tt.want, seq.String())
		})
	}
}

func TestResolveDoesNotModifyBase(t *testing.T) {
	t.Parallel()

	base := mustResolve(t, pathtype.Common, "/a/b/c")

	up, err := Resolve(base, "..")
	require.NoError(t, err)
	left, err := Resolve(up, "x")
	require.NoError(t, err)
	right, err := Resolve(up, "y")
	require.NoError(t, err)

	assert.Equal(t, "/a/b/c", base.String())
	assert.Equal(t, "/a/b", up.String())
	assert.Equal(t, "/a/b/x", left.String())
	assert.Equal(t, "/a/b/y", right.String())
}

func TestResolveDotIsIdentity(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"a/b", "/a", "../x", "."} {
		base := mustResolve(t, pathtype.Common, raw)
		got, err := Resolve(base, ".")
		require.NoError(t, err)
		assert.True(t, base.Equal(got), "resolving . against %q", raw)
	}
}

func TestApplyVariantMismatch(t *testing.T) {
	t.Parallel()

	fragment, err := Parse(`a\b`, pathtype.Windows)
	require.NoError(t, err)

	_, err = Apply(Empty(pathtype.Common), fragment)
	require.ErrorIs(t, err, pathtype.ErrVariantMismatch)
	assert.Contains(t, err.Error(), "windows fragment against common base")
}

func TestResolveAllPropagatesParseErrors(t *testing.T) {
	t.Parallel()

	_, err := ResolveAll(Empty(pathtype.Windows), "a", `\\server`, "b")
	require.ErrorIs(t, err, pathtype.ErrMalformedPath)
}
