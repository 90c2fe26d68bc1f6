// Package filesystem lists gallery directories and writes their index files.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/taigrr/gallery-index/internal/pathfilter"
)

// Service provides the file system operations of the generator.
type Service struct {
	pathFilter  *pathfilter.PathFilter
	sortEntries bool
}

// Option configures a Service.
type Option func(*Service)

// WithSortedEntries makes ListEntries return names in lexicographic order
// instead of the order the file system reports them in.
func WithSortedEntries(enabled bool) Option {
	return func(s *Service) {
		s.sortEntries = enabled
	}
}

// New creates a new Service.
func New(pf *pathfilter.PathFilter, opts ...Option) *Service {
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	s := &Service{pathFilter: pf}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IndexFilename returns the reserved name of the index file.
func (s *Service) IndexFilename() string {
	return s.pathFilter.IndexFilename()
}

// IndexPath returns the path of the index file inside dir.
func (s *Service) IndexPath(dir string) string {
	return filepath.Join(dir, s.IndexFilename())
}

// ListEntries returns the names of dir's entries that belong in its index.
// Entries are never inspected; subdirectories are listed like any other name.
func (s *Service) ListEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory not found: %s - %w", dir, err)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s - %w", dir, err)
		}
		return nil, fmt.Errorf("failed to list directory: %s - %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	names = s.pathFilter.FilterEntries(names)

	if s.sortEntries {
		sort.Strings(names)
	}

	return names, nil
}

// WriteIndex creates or truncates the index file in dir and writes markup to it.
// There is no atomic rename: a failed write can leave a partial file behind.
func (s *Service) WriteIndex(dir, markup string) error {
	path := s.IndexPath(dir)
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s - %w", dir, err)
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s - %w", path, err)
		}
		return fmt.Errorf("failed to write file: %s - %w", path, err)
	}
	return nil
}
