// Command spacecurve evaluates the curves of a scene file and prints their
// samples or renders them to a PNG image.
//
// Usage:
//
//	spacecurve eval [--indent] <scene>
//	spacecurve render [--watch] [flags] -o out.png <scene>
//
// Scene files are YAML (.yaml, .yml) or TOML (.toml) files; see package
// honnef.co/go/spacecurve/internal/scene for their contents.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	logger  *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "spacecurve",
		Short:        "Evaluate and render the space curves of a scene",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log what is being evaluated")
	root.AddCommand(newEvalCmd(opts), newRenderCmd(opts))
	return root
}
