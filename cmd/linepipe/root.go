package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/linepipe/linepipe/pkg/pipeline"
)

type rootFlags struct {
	capacity int
	width    int
	sentinel string
	logLevel string
	drawPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "linepipe",
		Short: "Stream lines from stdin to stdout through a four-stage transformation pipeline",
		Long: `linepipe reads lines from standard input until the stop marker, replaces
line breaks with spaces and "++" pairs with carets, and writes the result
as fixed-width lines to standard output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.capacity, "capacity", pipeline.DefaultCapacity, "slot count of each hand-off buffer")
	cmd.Flags().IntVar(&flags.width, "width", pipeline.DefaultWidth, "output line width in characters")
	cmd.Flags().StringVar(&flags.sentinel, "sentinel", pipeline.DefaultSentinel, "input line that ends the stream")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "error", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.drawPath, "draw", "", "write the pipeline topology to this path as a DOT file")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	log := newLogger(flags.logLevel)

	opts := []pipeline.Option{
		pipeline.WithCapacity(flags.capacity),
		pipeline.WithWidth(flags.width),
		pipeline.WithSentinel(flags.sentinel),
		pipeline.WithLogger(log),
	}
	if flags.drawPath != "" {
		opts = append(opts, pipeline.WithDrawer(flags.drawPath))
	}

	pipe, err := pipeline.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}

	return pipe.Run(cmd.Context())
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func execute() error {
	return newRootCmd().Execute()
}
