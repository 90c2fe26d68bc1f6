// Package types defines the data structures shared by the gallery index generator.
package types

type (
	// Config controls which directories are indexed and how the grid is laid out.
	Config struct {
		Targets          []string `json:"targets" yaml:"targets"` // literal paths or glob patterns
		ColumnsPerRow    int      `json:"columnsPerRow" yaml:"columnsPerRow"`
		ThumbnailWidthPx int      `json:"thumbnailWidthPx" yaml:"thumbnailWidthPx"`
		IndexFilename    string   `json:"indexFilename" yaml:"indexFilename"`
		SortEntries      bool     `json:"sortEntries,omitempty" yaml:"sortEntries,omitempty"`
		ContinueOnError  bool     `json:"continueOnError,omitempty" yaml:"continueOnError,omitempty"`
		DryRun           bool     `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
		IgnoredPatterns  []string `json:"ignoredPatterns,omitempty" yaml:"ignoredPatterns,omitempty"`
	}

	// PathFilterConfig contains configuration for the entry filter.
	PathFilterConfig struct {
		IndexFilename   string   `json:"indexFilename"`
		IgnoredPatterns []string `json:"ignoredPatterns"`
	}
)

const (
	// DefaultIndexFilename is the reserved name of the generated index.
	DefaultIndexFilename = "README.md"
	// DefaultColumnsPerRow is the number of thumbnails per table row.
	DefaultColumnsPerRow = 4
	// DefaultThumbnailWidthPx is the rendered width of each thumbnail.
	DefaultThumbnailWidthPx = 200
)

// DefaultTargets are the gallery directories indexed when nothing else is configured.
var DefaultTargets = []string{
	"./templates/img/",
	"./campaign/characters/non-player/img/",
	"./campaign/characters/player/img/",
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Targets:          append([]string(nil), DefaultTargets...),
		ColumnsPerRow:    DefaultColumnsPerRow,
		ThumbnailWidthPx: DefaultThumbnailWidthPx,
		IndexFilename:    DefaultIndexFilename,
	}
}
