package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/devtool/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/devtool/internal/adapters/outbound/process"
	"github.com/openkraft/devtool/internal/adapters/outbound/tui"
	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/paths"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var release bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project with the configured tool",
		Long:  "Run `<tool> build` in the current directory with the features from build.features. The tool defaults to cargo.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			r, err := opts.resolver()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(r, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderBuildStart(cfg.Name))

			svc := application.NewBuildService(process.New(), gitinfo.New(), logger)
			result, err := svc.Build(cmd.Context(), cfg, application.BuildRequest{
				ProjectDir: r.WorkDir,
				Release:    release,
			})
			if err != nil {
				return err
			}

			if result.Stdout != "" {
				fmt.Fprint(out, result.Stdout)
			}
			result.ArtifactPath = paths.RelativeTo(result.ArtifactPath, r.WorkDir)
			fmt.Fprint(out, tui.RenderBuildResult(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&release, "release", false, "Build with the release profile")

	return cmd
}

func newCleanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build target directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			r, err := opts.resolver()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(r, logger)
			if err != nil {
				return err
			}

			svc := application.NewBuildService(process.New(), gitinfo.New(), logger)
			removed, err := svc.Clean(cfg, r.WorkDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderClean(paths.RelativeTo(removed, r.WorkDir)))
			return nil
		},
	}
}
