package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/devtool/internal/adapters/outbound/scanner"
	"github.com/openkraft/devtool/internal/adapters/outbound/tui"
	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/domain"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var (
		ext        string
		jobs       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Check source files for TODO and FIXME markers",
		Long: "Apply the rules listed under check.rules to every given file. Directories are searched " +
			"recursively for files with the --ext extension. Exits 1 when any issue is found.",
		Args: cobra.MinimumNArgs(1),
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

			sc := scanner.New(logger)
			files, err := application.ExpandTargets(sc, args, ext, cfg.Check.IgnorePatterns)
			if err != nil {
				return err
			}

			svc := application.NewCheckService(sc, application.CheckOptions{
				Rules:  cfg.Check.Rules,
				Jobs:   jobs,
				Logger: logger,
			})

			out := cmd.OutOrStdout()
			if !jsonOutput {
				fmt.Fprint(out, tui.RenderCheckProgress(len(files)))
			}

			result, err := svc.Run(cmd.Context(), files)
			if err != nil {
				// Issues found before the failure are still reported.
				if result != nil && !jsonOutput {
					fmt.Fprint(out, tui.RenderCheckResult(result))
				}
				return err
			}

			if jsonOutput {
				if err := renderCheckJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, tui.RenderCheckResult(result))
				fmt.Fprint(out, tui.RenderCheckSummary(result))
			}

			if !result.Passed() {
				return &domain.CheckFailure{Files: len(result.Files), Issues: result.IssueCount()}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "rs", "File extension searched for in directory arguments")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of files checked concurrently")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func renderCheckJSON(cmd *cobra.Command, result *domain.CheckResult) error {
	report := struct {
		Passed bool `json:"passed"`
		Issues int  `json:"issues"`
		*domain.CheckResult
	}{
		Passed:      result.Passed(),
		Issues:      result.IssueCount(),
		CheckResult: result,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
