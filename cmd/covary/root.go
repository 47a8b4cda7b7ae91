package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type options struct {
	format  string
	verbose bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	command := &cobra.Command{
		Use:           "covary",
		Short:         "Demonstrates converters with contravariant input and covariant output",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unsupported format: %q, expected %s or %s", opts.format, formatText, formatJSON)
			}
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			d := &demo{out: out, format: opts.format, logger: logger, now: time.Now}
			return d.run()
		},
	}
	command.Flags().StringVar(&opts.format, "format", formatText, "result format: text or json")
	command.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return command
}
