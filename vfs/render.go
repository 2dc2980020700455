package vfs

import "strings"

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
)

// Render draws the subtree of start as an ASCII tree, depth first and pre-order. The start node is drawn
// as the last and only sibling. The root marker renders as "/" and is not expanded.
//
// A path missing from the index renders a "No such file or directory" line instead of failing.
func Render(index *Index, start string) string {
	var sb strings.Builder
	render(&sb, index, start, "", true)
	return sb.String()
}

func render(sb *strings.Builder, index *Index, path, prefix string, last bool) {
	if path == RootPath {
		sb.WriteString("/\n")
		return
	}

	connector := branchConnector
	if last {
		connector = lastConnector
	}

	entry, ok := index.Lookup(path)
	if !ok {
		sb.WriteString(prefix + connector + "No such file or directory: " + path + "\n")
		return
	}

	if !entry.IsDir() {
		sb.WriteString(prefix + connector + BaseName(path) + "\n")
		return
	}

	sb.WriteString(prefix + connector + BaseName(path) + "/\n")

	childPrefix := prefix + branchIndent
	if last {
		childPrefix = prefix + lastIndent
	}

	children := Children(index, path)
	for i, child := range children {
		render(sb, index, child.Path, childPrefix, i == len(children)-1)
	}
}
