package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/common"
)

// Result is the outcome of one command taken from the queue.
type Result struct {
	Command          string `json:"command"`
	Output           string `json:"result"`
	CurrentDirectory string `json:"currentDirectory"`
	Exit             bool   `json:"exit"`
}

// Output is the surface results are delivered to. Close is called once when the session has ended.
type Output interface {
	Print(result Result)
	Close()
}

// ConsoleOutput echoes every command and its result to a writer, prefixed by the prompt.
type ConsoleOutput struct {
	out    io.Writer
	name   string
	prompt *color.Color
}

// NewConsoleOutput returns a console output for the computer name.
func NewConsoleOutput(out io.Writer, computerName string, colored bool) *ConsoleOutput {
	prompt := color.New(color.FgGreen, color.Bold)
	if colored {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	return &ConsoleOutput{
		out:    out,
		name:   computerName,
		prompt: prompt,
	}
}

// Prompt returns the prompt label.
func (console *ConsoleOutput) Prompt() string {
	return console.prompt.Sprintf("%s@shell:~$ ", console.name)
}

// Print writes the command and its result. The exit command is not echoed.
func (console *ConsoleOutput) Print(result Result) {
	if result.Exit {
		return
	}
	fmt.Fprintf(console.out, "%s%s\n%s\n", console.Prompt(), result.Command, result.Output)
}

// Close does nothing. The console belongs to the process and is released when it exits.
func (console *ConsoleOutput) Close() {}

// LogOutput reports results to a logger, for front-ends that return results by other means.
type LogOutput struct {
	logger *logrus.Logger
	once   sync.Once
}

// NewLogOutput returns an output that logs every result at debug level. A nil logger discards them.
func NewLogOutput(logger *logrus.Logger) *LogOutput {
	if logger == nil {
		logger = common.NewLogger()
	}

	return &LogOutput{logger: logger}
}

func (output *LogOutput) Print(result Result) {
	output.logger.WithFields(logrus.Fields{
		"command": result.Command,
		"cwd":     result.CurrentDirectory,
	}).Debug("Command executed")
}

// Close reports the end of the session.
func (output *LogOutput) Close() {
	output.once.Do(func() { output.logger.Info("Session closed") })
}
