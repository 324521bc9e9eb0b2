package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrec/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir      string
	logLevel string
	keyed    bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:   "vrec",
		Short: "Virtual DOM reconciler playground",
		Long: `vrec drives the demo application through the reconciler and an
in-memory surface.

It can render the app once, replay a scripted sequence of events,
store snapshots of the surface on disk or S3, and serve a live view
over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				errors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", ".", "Directory containing vrec.yaml")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (default from vrec.yaml)")
	rootCmd.PersistentFlags().BoolVar(&g.keyed, "keyed", false, "Match children by key")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(&g),
		simulateCmd(&g),
		serveCmd(&g),
		snapshotCmd(&g),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
