package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/gallery-index/internal/report"
)

type (
	// RegenerateInput contains parameters for regenerating the gallery indexes.
	RegenerateInput struct {
		Sort      bool `json:"sort,omitempty" jsonschema:"Order images by file name instead of directory listing order (default: false)"`
		KeepGoing bool `json:"keepGoing,omitempty" jsonschema:"Index every directory and report all failures instead of stopping at the first (default: false)"`
		DryRun    bool `json:"dryRun,omitempty" jsonschema:"Render the indexes without writing them (default: false)"`
	}

	// RegenerateOutput contains the per-directory results of a run.
	RegenerateOutput = report.Summary

	// PreviewInput contains parameters for previewing one directory's index.
	PreviewInput struct {
		Dir  string `json:"dir" jsonschema:"One of the directories listed by the targets tool, as listed there"`
		Sort bool   `json:"sort,omitempty" jsonschema:"Order images by file name instead of directory listing order (default: false)"`
	}

	// PreviewOutput contains the markup that would be written.
	PreviewOutput struct {
		Dir    string `json:"dir"`
		Markup string `json:"markup"`
	}

	// TargetsInput contains parameters for listing the gallery directories.
	TargetsInput struct{}

	// TargetsOutput contains the configured targets and the directories they resolve to.
	TargetsOutput struct {
		Targets     []string `json:"targets"`
		Directories []string `json:"directories"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "regenerate",
		Description: "Rewrite the README.md image grid in every configured gallery directory. Returns one result per directory.",
	}, handleRegenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Render the README.md image grid for a single directory without writing it.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "targets",
		Description: "List the configured gallery targets and the directories they currently resolve to, with glob patterns expanded.",
	}, handleTargets)
}
