package shell

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/common"
	"github.com/skufirovan/command-line-emulator/common/metrics"
	"github.com/skufirovan/command-line-emulator/vfs"
)

// Recorder persists executed commands, e.g. *session.Log.
type Recorder interface {
	Append(command, result string) error
}

// Shell holds the state of one session: the index, the current directory and the session log.
type Shell struct {
	index    *vfs.Index
	files    TextReader
	recorder Recorder
	logger   *logrus.Logger

	mu  sync.RWMutex
	cwd string
}

// New creates a shell positioned at the root marker.
func New(index *vfs.Index, files TextReader, recorder Recorder, opt ...common.LogOption) *Shell {
	return &Shell{
		index:    index,
		files:    files,
		recorder: recorder,
		logger:   common.NewLogger(opt...),
		cwd:      vfs.RootPath,
	}
}

// Index returns the index the shell browses.
func (shell *Shell) Index() *vfs.Index {
	return shell.index
}

// CurrentDirectory returns the current directory.
func (shell *Shell) CurrentDirectory() string {
	shell.mu.RLock()
	defer shell.mu.RUnlock()
	return shell.cwd
}

// Execute runs one command line, records it and returns the result.
func (shell *Shell) Execute(ctx context.Context, line string) string {
	start := time.Now()

	result, cwd := Dispatch(ctx, line, shell.index, shell.CurrentDirectory(), shell.files)

	shell.mu.Lock()
	shell.cwd = cwd
	shell.mu.Unlock()

	shell.record(line, result)
	metrics.RecordCommand(verbLabel(line), time.Since(start))

	return result
}

// Exit records the exit command and returns the exit message.
func (shell *Shell) Exit(line string) string {
	shell.record(line, ExitMessage)
	metrics.RecordCommand(VerbExit, 0)
	return ExitMessage
}

func (shell *Shell) record(command, result string) {
	if shell.recorder == nil {
		return
	}

	if err := shell.recorder.Append(command, result); err != nil {
		metrics.RecordSessionLogFailure()
		shell.logger.WithError(err).WithField("command", command).Warn("Failed to append session log")
	}
}
