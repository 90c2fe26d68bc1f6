package pathfilter

import (
	"slices"
	"testing"

	"github.com/taigrr/gallery-index/internal/types"
)

func TestPathFilter_BlocksIndexFile(t *testing.T) {
	filter := New(nil)

	if filter.IsAllowed("README.md") {
		t.Error("IsAllowed(\"README.md\") = true, want false")
	}
	if filter.IndexFilename() != "README.md" {
		t.Errorf("IndexFilename() = %q, want %q", filter.IndexFilename(), "README.md")
	}
}

func TestPathFilter_IndexFileMatchIsExact(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		name string
		want bool
	}{
		{"README.md", false},
		{"readme.md", true},
		{"README.md.bak", true},
		{"old-README.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsAllowed(tt.name); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_AllowsAnyOtherEntry(t *testing.T) {
	filter := New(nil)

	tests := []string{
		"dragon.png",
		"map.jpg",
		"notes.txt",
		".DS_Store",
		"no-extension",
		"sub-directory",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if !filter.IsAllowed(name) {
				t.Errorf("IsAllowed(%q) = false, want true", name)
			}
		})
	}
}

func TestPathFilter_CustomIndexFilename(t *testing.T) {
	filter := New(&types.PathFilterConfig{IndexFilename: "index.md"})

	if filter.IsAllowed("index.md") {
		t.Error("IsAllowed(\"index.md\") = true, want false")
	}
	if !filter.IsAllowed("README.md") {
		t.Error("IsAllowed(\"README.md\") = false, want true")
	}
}

func TestPathFilter_CustomIgnoredPatterns(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{".DS_Store", "*.tmp", "draft-?.png", "[wip]*"},
	})

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", false},
		{"upload.tmp", false},
		{"draft-1.png", false},
		{"draft-12.png", true},
		{"[wip]sketch.png", false},
		{"wip.png", true},
		{"final.png", true},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsAllowed(tt.name); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_FilterEntriesKeepsOrder(t *testing.T) {
	filter := New(nil)

	got := filter.FilterEntries([]string{"c.png", "README.md", "a.png", "b.png"})
	want := []string{"c.png", "a.png", "b.png"}

	if !slices.Equal(got, want) {
		t.Errorf("FilterEntries() = %v, want %v", got, want)
	}
}

func TestPathFilter_FilterEntriesEmpty(t *testing.T) {
	filter := New(nil)

	got := filter.FilterEntries([]string{"README.md"})
	if len(got) != 0 {
		t.Errorf("FilterEntries() = %v, want empty", got)
	}
}
