package vfs

import (
	"sort"
	"strings"
)

// ParentOf returns the parent directory string of path by stripping the final segment. Redundant trailing
// slashes of the parent are removed unless the parent consists of slashes only.
//
//	ParentOf("a/b/c") == "a/b"
//	ParentOf("a")     == ""
//	ParentOf("/a")    == "/"
func ParentOf(path string) string {
	head := path[:strings.LastIndex(path, "/")+1]
	if len(head) > 0 && strings.Trim(head, "/") != "" {
		head = strings.TrimRight(head, "/")
	}
	return head
}

// BaseName returns the final segment of path.
func BaseName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// Children returns the entries whose parent is path, directories first and index order otherwise.
func Children(index *Index, path string) []Entry {
	var children []Entry
	for _, entry := range index.Entries() {
		if entry.Path != path && ParentOf(entry.Path) == path {
			children = append(children, entry)
		}
	}

	sort.SliceStable(children, func(i, j int) bool {
		return children[i].IsDir() && !children[j].IsDir()
	})

	return children
}

// TopLevel returns the entries without a parent directory, in index order.
func TopLevel(index *Index) []Entry {
	var result []Entry
	for _, entry := range index.Entries() {
		if ParentOf(entry.Path) == "" {
			result = append(result, entry)
		}
	}
	return result
}
