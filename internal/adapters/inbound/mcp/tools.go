package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/devtool/internal/adapters/outbound/config"
	"github.com/openkraft/devtool/internal/adapters/outbound/scanner"
	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/paths"
)

func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("devtool_check",
			mcplib.WithDescription("Checks source files for TODO/FIXME markers using the project's configured rules and returns the issues as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated files or directories relative to the project root (defaults to the whole project)"),
			),
			mcplib.WithString("ext",
				mcplib.Description("Extension used when expanding directories (default rs)"),
			),
		),
		handleCheck(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("devtool_config",
			mcplib.WithDescription("Returns the resolved project configuration as JSON"),
		),
		handleConfig(projectPath),
	)
}

type checkResponse struct {
	Passed bool `json:"passed"`
	Issues int  `json:"issues"`
	*domain.CheckResult
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		targets := []string{projectPath}
		if raw, ok := args["files"].(string); ok && strings.TrimSpace(raw) != "" {
			targets = nil
			for _, t := range splitAndTrim(raw) {
				targets = append(targets, resolve(projectPath, t))
			}
		}
		ext := "rs"
		if raw, ok := args["ext"].(string); ok && strings.TrimSpace(raw) != "" {
			ext = strings.TrimSpace(raw)
		}

		sc := scanner.New(nil)
		files, err := application.ExpandTargets(sc, targets, ext, cfg.Check.IgnorePatterns)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewCheckService(sc, application.CheckOptions{Rules: cfg.Check.Rules})
		result, err := svc.Run(ctx, files)
		if err != nil {
			var readErr *domain.ReadError
			if errors.As(err, &readErr) {
				return errorResult(err.Error()), nil
			}
			return nil, fmt.Errorf("check failed: %w", err)
		}

		for i := range result.Files {
			result.Files[i].Path = paths.RelativeTo(result.Files[i].Path, projectPath)
		}

		return jsonResult(checkResponse{
			Passed:      result.Passed(),
			Issues:      result.IssueCount(),
			CheckResult: result,
		})
	}
}

func handleConfig(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(cfg)
	}
}

// loadConfig reads the project config from projectPath only; the user config
// directory is not consulted for MCP requests.
func loadConfig(projectPath string) (domain.ProjectConfig, error) {
	path := config.Locate(paths.Resolver{WorkDir: projectPath}, "")
	return config.New().Load(path)
}

func resolve(projectPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v and wraps it in a CallToolResult with text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
