package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/archive"
	"github.com/skufirovan/command-line-emulator/vfs"
	"github.com/spf13/cobra"
)

var (
	inspectArgs struct {
		json bool
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Print the index of an archive without starting a session",
		Args:  cobra.ExactArgs(1),
		Run:   inspect,
	}
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectArgs.json, "json", false, "Output the index in JSON format")

	rootCmd.AddCommand(inspectCmd)
}

func inspect(_ *cobra.Command, args []string) {
	index, err := archive.Load(context.Background(), args[0])
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load archive")
	}

	if err := printIndex(os.Stdout, index, inspectArgs.json); err != nil {
		logrus.WithError(err).Fatal("Failed to print index")
	}
}

// printIndex writes the entries of index as JSON, or the tree of every top-level entry.
func printIndex(w io.Writer, index *vfs.Index, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return errors.WithMessage(encoder.Encode(index.Entries()), "failed to encode index")
	}

	for _, entry := range vfs.TopLevel(index) {
		if _, err := io.WriteString(w, vfs.Render(index, entry.Path)); err != nil {
			return err
		}
	}

	return nil
}
