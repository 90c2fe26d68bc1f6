// Package report formats generator runs as YAML.
package report

import (
	"fmt"
	"io"

	"github.com/taigrr/gallery-index/internal/types"
	"gopkg.in/yaml.v3"
)

type (
	// Directory is the YAML form of a single directory result.
	Directory struct {
		Dir     string `json:"dir" yaml:"dir"`
		Entries int    `json:"entries" yaml:"entries"`
		Rows    int    `json:"rows" yaml:"rows"`
		Written bool   `json:"written" yaml:"written"`
		Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	}

	// Summary is the YAML document written for a run.
	Summary struct {
		Directories []Directory `json:"directories" yaml:"directories"`
		Failed      int         `json:"failed" yaml:"failed"`
		Error       string      `json:"error,omitempty" yaml:"error,omitempty"`
	}
)

// Build converts a run report into its YAML form. runErr is the error
// returned by the run, which may be set even when no directory failed.
func Build(rep types.RunReport, runErr error) Summary {
	summary := Summary{
		Directories: make([]Directory, 0, len(rep.Results)),
		Failed:      len(rep.Failed()),
	}

	for _, res := range rep.Results {
		dir := Directory{
			Dir:     res.Dir,
			Entries: res.Entries,
			Rows:    res.Rows,
			Written: res.Written,
		}
		if res.Err != nil {
			dir.Error = res.Err.Error()
		}
		summary.Directories = append(summary.Directories, dir)
	}

	if runErr != nil {
		summary.Error = runErr.Error()
	}

	return summary
}

// Write encodes the summary of a run to w.
func Write(w io.Writer, rep types.RunReport, runErr error) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(rep, runErr)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
