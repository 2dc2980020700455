package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RunScript executes the startup script at path line by line through the shell, before any interactive
// input. Each command, its result and a blank line are written to out. A missing or unspecified script is
// reported to logger and is not an error. It returns the number of executed commands.
func RunScript(ctx context.Context, shell *Shell, path string, out io.Writer, logger *logrus.Logger) (int, error) {
	if path == "" {
		logger.Info("Startup script not specified")
		return 0, nil
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.WithField("script", path).Warn("Startup script not found")
		return 0, nil
	}
	if err != nil {
		return 0, errors.WithMessagef(err, "failed to open startup script %s", path)
	}
	defer file.Close()

	var executed int

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		fmt.Fprintf(out, "%s\n%s\n\n", command, shell.Execute(ctx, command))
		executed++
	}

	if err := scanner.Err(); err != nil {
		return executed, errors.WithMessagef(err, "failed to read startup script %s", path)
	}

	logger.WithField("commands", executed).Debug("Startup script executed")

	return executed, nil
}

// ReadCommands submits every line read from r to the loop. At the end of input the loop is told to finish
// the queued commands and terminate.
func ReadCommands(r io.Reader, loop *Loop) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := loop.Submit(scanner.Text()); err != nil {
			if errors.Is(err, ErrLoopStopped) {
				return nil
			}
			return err
		}
	}

	loop.CloseInput()

	return scanner.Err()
}
