// Package resolver expands configured gallery targets into concrete directories.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when a literal target exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Resolver turns target specs into directory paths.
type Resolver struct {
	baseDir string
	logger  *slog.Logger
}

// New creates a Resolver. Relative targets are resolved against baseDir;
// an empty baseDir means the process working directory.
func New(baseDir string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		baseDir: baseDir,
		logger:  logger,
	}
}

// IsPattern reports whether a target contains glob metacharacters.
func IsPattern(target string) bool {
	return strings.ContainsAny(target, "*?[")
}

// Resolve expands targets in configured order. Literal targets are kept
// verbatim and must be existing directories. Patterns contribute the
// directories they match, in glob order; a pattern matching nothing is
// not an error. Duplicates are kept.
func (r *Resolver) Resolve(targets []string) ([]string, error) {
	var dirs []string

	for _, target := range targets {
		if IsPattern(target) {
			matches, err := r.expand(target)
			if err != nil {
				return nil, err
			}
			dirs = append(dirs, matches...)
			continue
		}

		if err := r.checkDirectory(target); err != nil {
			return nil, err
		}
		dirs = append(dirs, target)
	}

	return dirs, nil
}

// Path returns the cleaned filesystem path a resolved target refers to.
// Cleaning matters for patterns: Glob matches nothing for "./*/img/".
func (r *Resolver) Path(target string) string {
	if r.baseDir == "" || filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(r.baseDir, target)
}

func (r *Resolver) checkDirectory(target string) error {
	info, err := os.Stat(r.Path(target))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s - %w", target, err)
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s - %w", target, err)
		}
		return fmt.Errorf("failed to stat directory: %s - %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", target, ErrNotDirectory)
	}
	return nil
}

func (r *Resolver) expand(pattern string) ([]string, error) {
	matches, err := filepath.Glob(r.Path(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid target pattern: %s - %w", pattern, err)
	}

	var dirs []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, r.relative(match))
	}

	if len(dirs) == 0 {
		r.logger.Debug("target pattern matched no directories", "pattern", pattern)
	}

	return dirs, nil
}

// relative strips baseDir back off a glob match so results read like the
// configured targets.
func (r *Resolver) relative(match string) string {
	if r.baseDir == "" {
		return match
	}
	rel, err := filepath.Rel(r.baseDir, match)
	if err != nil || strings.HasPrefix(rel, "..") {
		return match
	}
	return rel
}
