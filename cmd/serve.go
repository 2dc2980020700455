package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/common/api"
	"github.com/skufirovan/command-line-emulator/gateway"
	"github.com/skufirovan/command-line-emulator/shell"
	"github.com/spf13/cobra"
)

var (
	serveArgs struct {
		session  sessionArgument
		endpoint string
	}

	serveCmd = &cobra.Command{
		Use:   "serve " + sessionArgsUsage,
		Short: "Start a shell session driven through the HTTP API",
		Args:  cobra.RangeArgs(0, 4),
		Run:   runServe,
	}
)

func init() {
	bindSessionFlags(serveCmd, &serveArgs.session)
	serveCmd.Flags().StringVar(&serveArgs.endpoint, "endpoint", "", "API endpoint, overrides the configuration file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, args []string) {
	conf, err := loadSessionConfig(serveArgs.session, args)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if serveArgs.endpoint != "" {
		conf.Gateway.Endpoint = serveArgs.endpoint
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

	loop := newLoop(conf, sh, shell.NewLogOutput(logrus.StandardLogger()))
	go loop.Run(ctx)

	server := gateway.NewServer(conf.ComputerName, sh, loop)
	if err := server.Serve(ctx, conf.Gateway.Endpoint, api.RouterOption{OriginsAllowed: conf.Gateway.Origins}); err != nil {
		logrus.WithError(err).Fatal("Failed to serve API")
	}

	<-loop.Done()
}
