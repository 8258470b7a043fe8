package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/openkraft/devtool/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the devtool MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve check and config tools over stdio",
		Long:  "Run an MCP server on stdin/stdout so coding assistants can run devtool checks and read the project config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.resolver()
			if err != nil {
				return err
			}
			root := r.Resolve(projectPath)
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				return fmt.Errorf("project path %s is not a directory", root)
			}

			logger := opts.logger(cmd)
			logger.Debug("serving MCP over stdio", "project", root)

			s := mcpadapter.NewDevtoolMCPServer(root, version)
			return server.ServeStdio(s, server.WithErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)))
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project directory served to MCP clients")

	return cmd
}
