package vfs_test

import (
	"testing"

	"github.com/skufirovan/command-line-emulator/vfs"
	"github.com/stretchr/testify/assert"
)

func TestParentOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a/b/c", "a/b"},
		{"a/b", "a"},
		{"a", ""},
		{"", ""},
		{"/a", "/"},
		{"a//b", "a"},
		{"a/b/", "a/b"},
		{"./a", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, vfs.ParentOf(tt.path))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "c.txt", vfs.BaseName("a/b/c.txt"))
	assert.Equal(t, "a", vfs.BaseName("a"))
	assert.Equal(t, "", vfs.BaseName("a/"))
}

func TestChildren(t *testing.T) {
	index := vfs.NewIndex([]vfs.Entry{
		{Path: "root", Kind: vfs.Directory},
		{Path: "root/b.txt", Kind: vfs.File},
		{Path: "root/sub", Kind: vfs.Directory},
		{Path: "root/a.txt", Kind: vfs.File},
		{Path: "root/sub/c.txt", Kind: vfs.File},
		{Path: "root/other", Kind: vfs.Directory},
	})

	var paths []string
	for _, child := range vfs.Children(index, "root") {
		paths = append(paths, child.Path)
	}

	assert.Equal(t, []string{"root/sub", "root/other", "root/b.txt", "root/a.txt"}, paths)
	assert.Empty(t, vfs.Children(index, "root/a.txt"))
	assert.Empty(t, vfs.Children(index, "missing"))
}

func TestTopLevel(t *testing.T) {
	index := vfs.NewIndex([]vfs.Entry{
		{Path: "root", Kind: vfs.Directory},
		{Path: "root/a.txt", Kind: vfs.File},
		{Path: "readme", Kind: vfs.File},
	})

	entries := vfs.TopLevel(index)
	assert.Len(t, entries, 2)
	assert.Equal(t, "root", entries[0].Path)
	assert.Equal(t, "readme", entries[1].Path)
}
