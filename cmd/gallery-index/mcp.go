package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/gallery-index/internal/generator"
	"github.com/taigrr/gallery-index/internal/report"
	"github.com/taigrr/gallery-index/internal/types"
)

var (
	serverBaseDir string
	serverLogger  *slog.Logger
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the generator over the Model Context Protocol on stdio",
		Long: `mcp runs a Model Context Protocol server on stdin/stdout so an MCP
client can regenerate or preview gallery indexes. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverBaseDir = opts.chdir
			serverLogger = newLogger(opts.verbose)

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "gallery-index",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}

func newServerGenerator(cfg types.Config) (*generator.Generator, error) {
	return generator.New(cfg,
		generator.WithBaseDir(serverBaseDir),
		generator.WithLogger(serverLogger),
	)
}

func handleRegenerate(ctx context.Context, req *mcp.CallToolRequest, input RegenerateInput) (*mcp.CallToolResult, RegenerateOutput, error) {
	cfg := types.DefaultConfig()
	cfg.SortEntries = input.Sort
	cfg.ContinueOnError = input.KeepGoing
	cfg.DryRun = input.DryRun

	gen, err := newServerGenerator(cfg)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RegenerateOutput{}, err
	}

	rep, runErr := gen.Run(ctx)
	summary := report.Build(rep, runErr)
	if runErr != nil {
		return &mcp.CallToolResult{IsError: true}, summary, runErr
	}

	return nil, summary, nil
}

func handlePreview(ctx context.Context, req *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
	dir := strings.TrimSpace(input.Dir)
	if dir == "" {
		return &mcp.CallToolResult{IsError: true}, PreviewOutput{}, fmt.Errorf("dir is required")
	}

	cfg := types.DefaultConfig()
	cfg.SortEntries = input.Sort

	gen, err := newServerGenerator(cfg)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PreviewOutput{Dir: dir}, err
	}

	markup, err := gen.Preview(dir)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PreviewOutput{Dir: dir}, err
	}

	return nil, PreviewOutput{Dir: dir, Markup: markup}, nil
}

func handleTargets(ctx context.Context, req *mcp.CallToolRequest, input TargetsInput) (*mcp.CallToolResult, TargetsOutput, error) {
	gen, err := newServerGenerator(types.DefaultConfig())
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, TargetsOutput{}, err
	}

	cfg := gen.Config()
	dirs, err := gen.Resolve()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, TargetsOutput{Targets: cfg.Targets}, err
	}

	return nil, TargetsOutput{Targets: cfg.Targets, Directories: dirs}, nil
}
