// Package vfs models the read-only virtual filesystem that the shell browses. The filesystem is a flat
// index of archive member paths; the directory hierarchy is never stored, it is derived on demand from
// the path strings themselves.
//
// The main features of this package include:
//
//   - Defining the Entry and Index types, an insertion-ordered and immutable path to entry mapping.
//   - Deriving parent and child relations between paths (ParentOf, BaseName, Children).
//   - Rendering a nested ASCII tree for a path (Render).
package vfs
