package vfs

import "strings"

// Kind represents the kind of an entry in the Index.
type Kind string

const (
	File      Kind = "file"
	Directory Kind = "directory"
)

// RootPath is the marker of the virtual root directory. It is never an index key.
const RootPath = "/"

// Entry represents one archive member.
type Entry struct {
	Path    string `json:"path"`              // Archive relative, slash separated path
	Kind    Kind   `json:"kind"`              // Kind of the member
	Special bool   `json:"special,omitempty"` // Link, device or fifo member listed as a file
}

// IsDir reports whether the entry is a directory.
func (entry Entry) IsDir() bool {
	return entry.Kind == Directory
}

// IsRegular reports whether the entry is a regular file with readable content.
func (entry Entry) IsRegular() bool {
	return entry.Kind == File && !entry.Special
}

// Index is an insertion-ordered mapping from path to Entry. It is not modified after construction and is
// safe for concurrent readers.
type Index struct {
	paths   []string
	entries map[string]Entry
}

// NewIndex creates an index from the given entries in order. When a path occurs more than once, the last
// entry wins but the path keeps the position of its first occurrence.
func NewIndex(entries []Entry) *Index {
	index := &Index{
		entries: make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		if _, ok := index.entries[entry.Path]; !ok {
			index.paths = append(index.paths, entry.Path)
		}
		index.entries[entry.Path] = entry
	}

	return index
}

// Len returns the number of entries.
func (index *Index) Len() int {
	return len(index.paths)
}

// Lookup returns the entry of the specified path.
func (index *Index) Lookup(path string) (Entry, bool) {
	entry, ok := index.entries[path]
	return entry, ok
}

// Paths returns all paths in index order.
func (index *Index) Paths() []string {
	return append([]string(nil), index.paths...)
}

// Entries returns all entries in index order.
func (index *Index) Entries() []Entry {
	result := make([]Entry, 0, len(index.paths))
	for _, path := range index.paths {
		result = append(result, index.entries[path])
	}
	return result
}

// WithPrefix returns the paths that start with prefix, in index order.
//
// The match is a plain string prefix and is not aware of path segments, so "root" also matches
// "root2/file".
func (index *Index) WithPrefix(prefix string) []string {
	var result []string
	for _, path := range index.paths {
		if strings.HasPrefix(path, prefix) {
			result = append(result, path)
		}
	}
	return result
}
