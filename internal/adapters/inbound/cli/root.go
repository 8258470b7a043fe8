package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/openkraft/devtool/internal/adapters/outbound/config"
	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/paths"
)

var (
	version = "dev"
	commit  = "none"
)

// Exit codes returned by the devtool binary.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *globalOptions) resolver() (paths.Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return paths.Resolver{}, fmt.Errorf("resolving working directory: %w", err)
	}
	// A missing home only disables the user-level config lookup.
	home, _ := os.UserHomeDir()
	return paths.Resolver{WorkDir: wd, Home: home}, nil
}

// loadConfig locates and loads the project configuration.
func (o *globalOptions) loadConfig(r paths.Resolver, logger *slog.Logger) (domain.ProjectConfig, error) {
	path := config.Locate(r, o.configPath)
	logger.Debug("loading config", "path", path)
	return config.New().Load(path)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "devtool",
		Short:         "Scaffold, build and lint small Rust projects",
		Long:          "devtool creates new projects, drives the configured build tool and checks source files for TODO and FIXME markers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file (default: ./devtool.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newBuildCmd(opts))
	cmd.AddCommand(newCleanCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command with a context cancelled on interrupt and
// reports errors on stderr. A CheckFailure is not reported again since its
// issues were already printed.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		var failure *domain.CheckFailure
		if !errors.As(err, &failure) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var failure *domain.CheckFailure
	if errors.As(err, &failure) {
		return ExitIssues
	}
	return ExitError
}
