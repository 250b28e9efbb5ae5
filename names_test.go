package flexpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "qux.html", NewCommon("foo/qux.html").Base())
	assert.Equal(t, "qux", NewCommon("foo/qux.html").BaseWithoutExt(".html"))
	assert.Equal(t, "qux", NewCommon("foo/qux.html").BaseWithoutExt("html"))
	assert.Equal(t, "qux.html", NewCommon("foo/qux.html").BaseWithoutExt(".md"))
	assert.Equal(t, "", NewCommon("/").Base())
	assert.Equal(t, "", NewCommon(".").Base())
	assert.Equal(t, "..", NewCommon("../..").Base())
	assert.Equal(t, "file.txt", MustNew(`C:\dir\file.txt`, Windows).Base())
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".tar.gz", NewCommon("/a/b.tar.gz").Extension())
	assert.Equal(t, "", NewCommon("/a/.bashrc").Extension())
	assert.Equal(t, "", NewCommon("/").Extension())

	assert.True(t, NewCommon("a.x").HasExtensions(".x", ".y"))
	assert.False(t, NewCommon("a.x").HasExtensions(".y", ".z"))
	assert.True(t, NewCommon("dir/A.TXT").HasExtension("txt"))
	assert.False(t, NewCommon("/").HasExtension(""))
	assert.False(t, NewCommon("..").HasExtension("."))

	assert.Equal(t, "a.y", NewCommon("a.x").ChangeExtension(".y").String())
	assert.Equal(t, "a.0", NewCommon("a.x.y").ChangeExtension(".0").String())
	assert.Equal(t, "a.0.1", NewCommon("a.x.y").ChangeExtension(".0.1").String())
	assert.Equal(t, "dir.d/file.md", NewCommon("dir.d/file").ChangeExtension("md").String())
	assert.Equal(t, `C:\a\b.md`, MustNew(`C:\a\b.txt`, Windows).ChangeExtension(".md").String())
	assert.Equal(t, "/", NewCommon("/").ChangeExtension(".y").String())

	p, err := NewCommon("x/a.tar.gz").ChangeLastExtension("zst")
	require.NoError(t, err)
	assert.Equal(t, "x/a.tar.zst", p.String())

	_, err = NewCommon("a.x").ChangeLastExtension(".y.z")
	require.ErrorIs(t, err, ErrInvalidExtension)

	p, err = NewCommon("..").ChangeLastExtension(".y")
	require.NoError(t, err)
	assert.Equal(t, "..", p.String())

	original := NewCommon("/a/b.txt")
	_ = original.ChangeExtension(".md")
	assert.Equal(t, "/a/b.txt", original.String())
}
