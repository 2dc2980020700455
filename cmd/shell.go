package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/shell"
	"github.com/spf13/cobra"
)

var (
	shellArgs struct {
		session       sessionArgument
		colorDisabled bool
	}

	shellCmd = &cobra.Command{
		Use:   "shell " + sessionArgsUsage,
		Short: "Start an interactive shell session reading commands from stdin",
		Args:  cobra.RangeArgs(0, 4),
		Run:   runShell,
	}
)

func init() {
	bindSessionFlags(shellCmd, &shellArgs.session)
	shellCmd.Flags().BoolVar(&shellArgs.colorDisabled, "no-color", false, "Disable the colored prompt")

	rootCmd.AddCommand(shellCmd)
}

func runShell(_ *cobra.Command, args []string) {
	conf, err := loadSessionConfig(shellArgs.session, args)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh, err := newShell(ctx, conf)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start shell session")
	}

	if _, err := shell.RunScript(ctx, sh, conf.Script, os.Stdout, logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Warn("Failed to run startup script")
	}

	console := shell.NewConsoleOutput(os.Stdout, conf.ComputerName, !shellArgs.colorDisabled && !color.NoColor)
	loop := newLoop(conf, sh, console)

	fmt.Println(console.Prompt())

	go func() {
		if err := shell.ReadCommands(os.Stdin, loop); err != nil {
			logrus.WithError(err).Warn("Failed to read commands")
			loop.CloseInput()
		}
	}()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Fatal("Command loop failed")
	}
}
