// Package pathfilter decides which directory entries belong in a gallery index.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/gallery-index/internal/types"
)

// PathFilter excludes the reserved index file and any ignored patterns.
type PathFilter struct {
	indexFilename   string
	ignoredPatterns []string
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		indexFilename: types.DefaultIndexFilename,
	}

	if config != nil {
		if config.IndexFilename != "" {
			pf.indexFilename = config.IndexFilename
		}
		pf.ignoredPatterns = append(pf.ignoredPatterns, config.IgnoredPatterns...)
	}

	return pf
}

// simpleGlobMatch converts a glob pattern to regex and tests against the name.
func (pf *PathFilter) simpleGlobMatch(pattern, name string) bool {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*")
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")

	re, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		return false
	}

	return re.MatchString(name)
}

// IsAllowed reports whether an entry name should appear in the index.
// The comparison with the index filename is exact, matching the listing.
func (pf *PathFilter) IsAllowed(name string) bool {
	if name == pf.indexFilename {
		return false
	}

	normalizedName := strings.ReplaceAll(name, "\\", "/")
	for _, pattern := range pf.ignoredPatterns {
		if pf.simpleGlobMatch(pattern, normalizedName) {
			return false
		}
	}

	return true
}

// IndexFilename returns the reserved index filename.
func (pf *PathFilter) IndexFilename() string {
	return pf.indexFilename
}

// FilterEntries returns the allowed names, preserving their order.
func (pf *PathFilter) FilterEntries(names []string) []string {
	allowed := make([]string, 0, len(names))
	for _, name := range names {
		if pf.IsAllowed(name) {
			allowed = append(allowed, name)
		}
	}
	return allowed
}
