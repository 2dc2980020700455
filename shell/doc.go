// Package shell executes the shell commands (ls, cd, tree, rev, exit) against a read-only archive index.
//
// Dispatch is the stateless core: it parses one raw command line and returns the result text together
// with the new current directory. Shell wraps it with session state and records every command in the
// session log. Loop serializes command lines from any front-end through a queue consumed by a single
// goroutine, which is the only writer of the current directory and the session log.
package shell
