// Package generator regenerates the gallery index of every configured directory.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taigrr/gallery-index/internal/filesystem"
	"github.com/taigrr/gallery-index/internal/grid"
	"github.com/taigrr/gallery-index/internal/pathfilter"
	"github.com/taigrr/gallery-index/internal/resolver"
	"github.com/taigrr/gallery-index/internal/types"
)

// ErrInvalidConfig is returned by New when the configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrNotTarget is returned by Preview for a directory outside the configured targets.
var ErrNotTarget = errors.New("not a configured gallery directory")

// Generator runs resolve, list, render and write for each target directory.
type Generator struct {
	cfg      types.Config
	baseDir  string
	logger   *slog.Logger
	resolver *resolver.Resolver
	files    *filesystem.Service
	renderer *grid.Renderer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithBaseDir resolves relative targets against dir instead of the working directory.
func WithBaseDir(dir string) Option {
	return func(g *Generator) {
		g.baseDir = dir
	}
}

// New validates cfg and wires the generator's services.
func New(cfg types.Config, opts ...Option) (*Generator, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	renderer, err := grid.New(cfg.ColumnsPerRow, cfg.ThumbnailWidthPx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	pf := pathfilter.New(&types.PathFilterConfig{
		IndexFilename:   cfg.IndexFilename,
		IgnoredPatterns: cfg.IgnoredPatterns,
	})

	g.renderer = renderer
	g.resolver = resolver.New(g.baseDir, g.logger)
	g.files = filesystem.New(pf, filesystem.WithSortedEntries(cfg.SortEntries))

	return g, nil
}

// Validate checks that cfg describes a usable run.
func Validate(cfg types.Config) error {
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("%w: no targets configured", ErrInvalidConfig)
	}
	if cfg.ColumnsPerRow < 1 {
		return fmt.Errorf("%w: columns per row must be at least 1, got %d", ErrInvalidConfig, cfg.ColumnsPerRow)
	}
	if cfg.ThumbnailWidthPx < 1 {
		return fmt.Errorf("%w: thumbnail width must be at least 1, got %d", ErrInvalidConfig, cfg.ThumbnailWidthPx)
	}
	name := strings.TrimSpace(cfg.IndexFilename)
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: index filename is required", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.IndexFilename, `/\`) {
		return fmt.Errorf("%w: index filename must not contain a path separator: %s", ErrInvalidConfig, cfg.IndexFilename)
	}
	return nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() types.Config {
	return g.cfg
}

// Resolve expands the configured targets into directories.
func (g *Generator) Resolve() ([]string, error) {
	dirs, err := g.resolver.Resolve(g.cfg.Targets)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve targets: %w", err)
	}
	return dirs, nil
}

// Run resolves the targets and indexes each directory in turn. By default it
// stops at the first failing directory, leaving later ones untouched. With
// ContinueOnError every directory is attempted and all failures are joined
// into the returned error. ctx is only checked between directories.
func (g *Generator) Run(ctx context.Context) (types.RunReport, error) {
	var report types.RunReport

	dirs, err := g.Resolve()
	if err != nil {
		return report, err
	}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := g.ProcessDirectory(dir)
		report.Results = append(report.Results, result)

		if result.Err == nil {
			continue
		}
		if !g.cfg.ContinueOnError {
			return report, result.Err
		}
		g.logger.Warn("failed to index directory", "dir", dir, "err", result.Err)
	}

	return report, report.Err()
}

// ProcessDirectory lists, renders and writes the index for one directory.
func (g *Generator) ProcessDirectory(dir string) types.DirectoryResult {
	result := types.DirectoryResult{Dir: dir}

	markup, entries, err := g.render(dir)
	if err != nil {
		result.Err = err
		return result
	}
	result.Entries = entries
	result.Rows = g.renderer.Rows(entries)

	if g.cfg.DryRun {
		g.logger.Info("rendered index", "dir", dir, "entries", result.Entries, "rows", result.Rows, "dryRun", true)
		return result
	}

	if err := g.files.WriteIndex(g.resolver.Path(dir), markup); err != nil {
		result.Err = err
		return result
	}
	result.Written = true

	g.logger.Info("wrote index", "path", g.files.IndexPath(g.resolver.Path(dir)), "entries", result.Entries, "rows", result.Rows)
	return result
}

// Preview returns the markup that would be written for dir, without writing it.
// dir must be one of the directories the configured targets resolve to.
func (g *Generator) Preview(dir string) (string, error) {
	dirs, err := g.Resolve()
	if err != nil {
		return "", err
	}

	want := g.resolver.Path(dir)
	for _, resolved := range dirs {
		if g.resolver.Path(resolved) == want {
			markup, _, err := g.render(resolved)
			return markup, err
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotTarget, dir)
}

func (g *Generator) render(dir string) (string, int, error) {
	names, err := g.files.ListEntries(g.resolver.Path(dir))
	if err != nil {
		return "", 0, err
	}
	return g.renderer.Render(names), len(names), nil
}
