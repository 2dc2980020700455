package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/archive"
	"github.com/skufirovan/command-line-emulator/common"
	"github.com/skufirovan/command-line-emulator/common/metrics"
	"github.com/skufirovan/command-line-emulator/config"
	"github.com/skufirovan/command-line-emulator/session"
	"github.com/skufirovan/command-line-emulator/shell"
	"github.com/spf13/cobra"
)

const sessionArgsUsage = "<computer-name> <archive> <log> [startup-script]"

type sessionArgument struct {
	config       string
	pollInterval time.Duration
	cacheSize    int
}

func bindSessionFlags(cmd *cobra.Command, args *sessionArgument) {
	cmd.Flags().StringVar(&args.config, "config", "", "TOML configuration file, positional arguments take precedence")
	cmd.Flags().DurationVar(&args.pollInterval, "poll-interval", 0, "Interval to check for shutdown while the command queue is empty")
	cmd.Flags().IntVar(&args.cacheSize, "cache-size", 0, "Number of file contents cached for rev")
}

// loadSessionConfig merges the configuration file, the flags and the positional arguments.
func loadSessionConfig(args sessionArgument, positional []string) (*config.Config, error) {
	conf, err := config.Load(args.config)
	if err != nil {
		return nil, err
	}

	fields := []*string{&conf.ComputerName, &conf.Archive, &conf.Log, &conf.Script}
	for i, value := range positional {
		*fields[i] = value
	}

	if args.pollInterval > 0 {
		conf.PollInterval = args.pollInterval.String()
	}

	if args.cacheSize > 0 {
		conf.Cache.Size = args.cacheSize
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid session configuration")
	}

	return conf, nil
}

// newShell loads the archive index and creates the session log.
func newShell(ctx context.Context, conf *config.Config) (*shell.Shell, error) {
	index, err := archive.Load(ctx, conf.Archive)
	if err != nil {
		return nil, err
	}

	metrics.SetIndexEntries(index.Len())
	logrus.WithFields(logrus.Fields{
		"archive": conf.Archive,
		"entries": index.Len(),
	}).Info("Archive loaded")

	cacheConf, err := conf.CacheOptions()
	if err != nil {
		return nil, err
	}
	files := archive.NewCachedReader(archive.NewReader(conf.Archive), cacheConf)

	log, err := session.Create(conf.Log)
	if err != nil {
		return nil, err
	}

	return shell.New(index, files, log, common.StandardLogOption()), nil
}

func newLoop(conf *config.Config, sh *shell.Shell, output shell.Output) *shell.Loop {
	// validated by loadSessionConfig
	poll, _ := conf.PollDuration()

	return shell.NewLoop(sh, output, shell.LoopOption{
		PollInterval: poll,
		Logger:       logrus.StandardLogger(),
	})
}
