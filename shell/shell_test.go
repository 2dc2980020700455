package shell

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/skufirovan/command-line-emulator/archive"
	"github.com/skufirovan/command-line-emulator/vfs"
	"github.com/stretchr/testify/assert"
)

type memFiles struct {
	files map[string]string
	err   error
	reads int
}

func (m *memFiles) ReadText(ctx context.Context, name string) (string, error) {
	m.reads++
	if m.err != nil {
		return "", m.err
	}
	if content, ok := m.files[name]; ok {
		return content, nil
	}
	return "", archive.ErrEntryNotFound
}

type memRecorder struct {
	mu      sync.Mutex
	records [][2]string
	err     error
}

func (m *memRecorder) Append(command, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, [2]string{command, result})
	return nil
}

func (m *memRecorder) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func exampleIndex() *vfs.Index {
	return vfs.NewIndex([]vfs.Entry{
		{Path: "root", Kind: vfs.Directory},
		{Path: "root/a.txt", Kind: vfs.File},
	})
}

func newExampleShell() (*Shell, *memFiles, *memRecorder) {
	files := &memFiles{files: map[string]string{"root/a.txt": "hi"}}
	recorder := &memRecorder{}
	return New(exampleIndex(), files, recorder), files, recorder
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		verb string
		rest string
	}{
		{"ls", "ls", ""},
		{"  ls  ", "ls", ""},
		{"cd root/sub", "cd", "root/sub"},
		{"rev  hello   world ", "rev", "hello   world"},
		{"rev\thello", "rev", "hello"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			verb, rest := Parse(tt.line)
			assert.Equal(t, tt.verb, verb)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestIsExit(t *testing.T) {
	assert.True(t, IsExit("exit"))
	assert.True(t, IsExit("  EXIT "))
	assert.True(t, IsExit("Exit"))
	assert.False(t, IsExit("exit now"))
	assert.False(t, IsExit("quit"))
}

func TestExample(t *testing.T) {
	shell, _, _ := newExampleShell()
	ctx := context.Background()

	assert.Equal(t, "Moved to root", shell.Execute(ctx, "cd root"))
	assert.Equal(t, "root\nroot/a.txt", shell.Execute(ctx, "ls"))
	assert.Equal(t, "└── root/\n    └── a.txt\n", shell.Execute(ctx, "tree"))
	assert.Equal(t, "txt.a", shell.Execute(ctx, "rev a.txt"))
	assert.Equal(t, "ih", shell.Execute(ctx, "rev root/a.txt"))
}

func TestInitialDirectory(t *testing.T) {
	shell, _, _ := newExampleShell()
	ctx := context.Background()

	assert.Equal(t, vfs.RootPath, shell.CurrentDirectory())
	assert.Equal(t, "", shell.Execute(ctx, "ls"))
	assert.Equal(t, "/\n", shell.Execute(ctx, "tree"))
}

func TestUnknownCommand(t *testing.T) {
	shell, _, recorder := newExampleShell()
	ctx := context.Background()

	for _, line := range []string{"", "   ", "pwd", "ls -l", "tree root", "LS", "exit"} {
		assert.Equal(t, UnknownCommand, shell.Execute(ctx, line), line)
	}
	assert.Equal(t, 7, recorder.len())
}

func TestChangeDirectory(t *testing.T) {
	shell, _, _ := newExampleShell()
	ctx := context.Background()

	assert.Equal(t, "Directory nowhere not found", shell.Execute(ctx, "cd nowhere"))
	assert.Equal(t, vfs.RootPath, shell.CurrentDirectory())

	assert.Equal(t, "Moved to root", shell.Execute(ctx, "cd root"))
	assert.Equal(t, "Moved to root", shell.Execute(ctx, "cd root"))
	assert.Equal(t, "root", shell.CurrentDirectory())

	assert.Equal(t, "Directory  not found", shell.Execute(ctx, "cd"))
	assert.Equal(t, "root", shell.CurrentDirectory())

	// any index key is accepted, files included
	assert.Equal(t, "Moved to root/a.txt", shell.Execute(ctx, "cd root/a.txt"))
	assert.Equal(t, "└── a.txt\n", shell.Execute(ctx, "tree"))
}

func TestListPrefixMatch(t *testing.T) {
	index := vfs.NewIndex([]vfs.Entry{
		{Path: "root", Kind: vfs.Directory},
		{Path: "root/a.txt", Kind: vfs.File},
		{Path: "root2", Kind: vfs.Directory},
		{Path: "root2/x", Kind: vfs.File},
		{Path: "other", Kind: vfs.Directory},
	})

	assert.Equal(t, "root\nroot/a.txt\nroot2\nroot2/x", List(index, "root"))
	assert.Equal(t, "", List(index, "missing"))
}

func TestReverseIsInvolution(t *testing.T) {
	index := exampleIndex()
	files := &memFiles{}
	ctx := context.Background()

	for _, s := range []string{"", "a", "hello world", "привет, мир", "日本語 text", "a.txt", "root"} {
		reversed := Reverse(ctx, index, files, s)
		assert.Equal(t, s, Reverse(ctx, index, files, reversed), s)
	}

	// "root" is a directory and is reversed as a string
	assert.Equal(t, "toor", Reverse(ctx, index, files, "root"))
	assert.Equal(t, 0, files.reads)
}

func TestReverseFile(t *testing.T) {
	index := exampleIndex()
	files := &memFiles{files: map[string]string{"root/a.txt": "Привет\nмир"}}
	ctx := context.Background()

	first := Reverse(ctx, index, files, "root/a.txt")
	second := Reverse(ctx, index, files, "root/a.txt")

	assert.Equal(t, "рим\nтевирП", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, files.reads)
}

func TestReverseLinkReversesArgument(t *testing.T) {
	index := vfs.NewIndex([]vfs.Entry{
		{Path: "./root", Kind: vfs.Directory},
		{Path: "./root/a.txt", Kind: vfs.File},
		{Path: "./root/link", Kind: vfs.File, Special: true},
	})
	files := &memFiles{files: map[string]string{"./root/a.txt": "hi", "./root/link": ""}}

	assert.Equal(t, "knil/toor/.", Reverse(context.Background(), index, files, "./root/link"))
	assert.Equal(t, 0, files.reads)
}

func TestReverseReadFailure(t *testing.T) {
	index := exampleIndex()
	files := &memFiles{err: archive.ErrDecode}

	result := Reverse(context.Background(), index, files, "root/a.txt")
	assert.True(t, strings.HasPrefix(result, ReadErrorPrefix))
	assert.True(t, strings.HasSuffix(result, archive.ErrDecode.Error()))
}

func TestEveryCommandRecorded(t *testing.T) {
	shell, _, recorder := newExampleShell()
	ctx := context.Background()

	lines := []string{"ls", "cd root", "cd missing", "tree", "rev abc", "rev root/a.txt", "bogus", ""}
	for _, line := range lines {
		shell.Execute(ctx, line)
	}

	assert.Equal(t, len(lines), recorder.len())
	assert.Equal(t, [2]string{"rev abc", "cba"}, recorder.records[4])
	assert.Equal(t, [2]string{"", UnknownCommand}, recorder.records[7])
}

func TestRecorderFailureKeepsResult(t *testing.T) {
	files := &memFiles{}
	recorder := &memRecorder{err: errors.New("disk full")}
	shell := New(exampleIndex(), files, recorder)

	assert.Equal(t, "Moved to root", shell.Execute(context.Background(), "cd root"))
	assert.Equal(t, "root", shell.CurrentDirectory())
}

func TestExit(t *testing.T) {
	shell, _, recorder := newExampleShell()

	assert.Equal(t, ExitMessage, shell.Exit(" EXIT "))
	assert.Equal(t, [2]string{" EXIT ", ExitMessage}, recorder.records[0])
}

func TestVerbLabel(t *testing.T) {
	assert.Equal(t, "ls", verbLabel("ls"))
	assert.Equal(t, "rev", verbLabel("rev abc"))
	assert.Equal(t, "exit", verbLabel("Exit"))
	assert.Equal(t, "unknown", verbLabel("rm -rf"))
	assert.Equal(t, "unknown", verbLabel(""))
}
