// Package main implements the gallery index generator command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/gallery-index/internal/generator"
	"github.com/taigrr/gallery-index/internal/report"
	"github.com/taigrr/gallery-index/internal/types"
)

type options struct {
	chdir     string
	sort      bool
	keepGoing bool
	dryRun    bool
	report    bool
	verbose   bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gallery-index",
		Short: "Regenerate README.md image grids for gallery directories",
		Long: `gallery-index scans the configured image directories and rewrites the
README.md in each of them with an HTML table of thumbnails, one cell
per file, captioned with the file name.

With no flags every configured directory is indexed in turn and the
run stops at the first directory that cannot be read or written.`,
		Example: `gallery-index
gallery-index --sort --keep-going --report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.chdir, "chdir", "C", "", "resolve gallery directories relative to `dir`")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "order images by file name instead of directory listing order")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "index every directory and report all failures at the end")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "render indexes without writing them")
	cmd.Flags().BoolVar(&opts.report, "report", false, "print a YAML summary of the run to stdout")

	cmd.AddCommand(newMCPCmd(opts))

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (o *options) config() types.Config {
	cfg := types.DefaultConfig()
	cfg.SortEntries = o.sort
	cfg.ContinueOnError = o.keepGoing
	cfg.DryRun = o.dryRun
	return cfg
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	logger := newLogger(opts.verbose)

	gen, err := generator.New(opts.config(),
		generator.WithBaseDir(opts.chdir),
		generator.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	rep, runErr := gen.Run(cmd.Context())

	if opts.report {
		if err := report.Write(cmd.OutOrStdout(), rep, runErr); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("failed to regenerate gallery indexes: %w", runErr)
	}
	return nil
}
