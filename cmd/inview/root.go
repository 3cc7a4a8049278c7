package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-inview/internal/debug"
	"github.com/grindlemire/go-inview/internal/logging"
)

type rootOptions struct {
	debug   bool
	logFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "inview",
		Short: "inview reports whether an element is inside the viewport",
		Long: `inview evaluates element visibility against a scrolling viewport and
replays scripted scroll and resize sessions through a debounced tracker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			opts.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			if opts.logFile != "" {
				if err := debug.Init(opts.logFile); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logFile != "" {
				return debug.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Append tracker debug messages to this file")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newReplayCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
