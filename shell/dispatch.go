package shell

import (
	"context"
	"strings"
	"unicode"

	"github.com/skufirovan/command-line-emulator/vfs"
)

// Fixed results.
const (
	UnknownCommand  = "Неизвестная команда"
	ExitMessage     = "Выход из эмулятора"
	ReadErrorPrefix = "Ошибка при чтении файла: "
)

// Verbs.
const (
	VerbList   = "ls"
	VerbChange = "cd"
	VerbTree   = "tree"
	VerbRev    = "rev"
	VerbExit   = "exit"
)

// TextReader reads an archive member as text.
type TextReader interface {
	ReadText(ctx context.Context, name string) (string, error)
}

// Parse splits the trimmed line on the first whitespace run into the verb and the rest.
func Parse(line string) (verb, rest string) {
	line = strings.TrimSpace(line)

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}

	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

// IsExit reports whether line is the exit command, ignoring case and surrounding whitespace.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), VerbExit)
}

// Dispatch executes one command line against index with the current directory cwd. It returns the
// result text and the current directory after the command. Failures are reported in the result text.
func Dispatch(ctx context.Context, line string, index *vfs.Index, cwd string, files TextReader) (string, string) {
	verb, rest := Parse(line)

	switch {
	case verb == VerbList && rest == "":
		return List(index, cwd), cwd
	case verb == VerbChange:
		return ChangeDirectory(index, cwd, rest)
	case verb == VerbTree && rest == "":
		return vfs.Render(index, cwd), cwd
	case verb == VerbRev:
		return Reverse(ctx, index, files, rest), cwd
	default:
		return UnknownCommand, cwd
	}
}

// List returns the newline joined index paths that start with cwd.
func List(index *vfs.Index, cwd string) string {
	return strings.Join(index.WithPrefix(cwd), "\n")
}

// ChangeDirectory moves to path if it is an index key. Existence is the only check; a file path is
// accepted as well.
func ChangeDirectory(index *vfs.Index, cwd, path string) (string, string) {
	if _, ok := index.Lookup(path); !ok {
		return "Directory " + path + " not found", cwd
	}
	return "Moved to " + path, path
}

// Reverse returns the reversed content of arg if it names a regular file in index, otherwise arg itself
// reversed. Links are not followed.
func Reverse(ctx context.Context, index *vfs.Index, files TextReader, arg string) string {
	entry, ok := index.Lookup(arg)
	if !ok || !entry.IsRegular() {
		return ReverseText(arg)
	}

	text, err := files.ReadText(ctx, arg)
	if err != nil {
		return ReadErrorPrefix + err.Error()
	}

	return ReverseText(text)
}

// ReverseText reverses s by code point.
func ReverseText(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// verbLabel maps a command line to a bounded metrics label.
func verbLabel(line string) string {
	if IsExit(line) {
		return VerbExit
	}

	switch verb, _ := Parse(line); verb {
	case VerbList, VerbChange, VerbTree, VerbRev:
		return verb
	default:
		return "unknown"
	}
}
