package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/devtool/internal/adapters/outbound/config"
	"github.com/openkraft/devtool/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/devtool/internal/adapters/outbound/templates"
	"github.com/openkraft/devtool/internal/adapters/outbound/tui"
	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/domain"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		name   string
		force  bool
		git    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new project",
		Long: "Create the project directory with a devtool config, src/main.rs, .gitignore and README.md. " +
			"The project name defaults to the existing config's name, then to the directory name in kebab-case.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			var configName string
			switch format {
			case "yaml":
				configName = domain.ConfigFileName
			case "toml":
				configName = "devtool.toml"
			default:
				return fmt.Errorf("unsupported config format %q (valid: yaml, toml)", format)
			}

			logger := opts.logger(cmd)
			if name == "" {
				name = existingName(opts, filepath.Join(path, configName))
			}

			svc := application.NewInitService(templates.New(), config.New(), gitinfo.New(), logger)
			result, err := svc.Init(cmd.Context(), application.InitOptions{
				Path:       path,
				Name:       name,
				ConfigName: configName,
				Force:      force,
				Git:        git,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInitResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config and scaffold files")
	cmd.Flags().BoolVar(&git, "git", false, "Initialize a git repository")
	cmd.Flags().StringVar(&format, "format", "yaml", "Config format: yaml or toml")

	return cmd
}

// existingName returns the name from the --config file, or from the config
// already present in the target directory, or "" when neither loads.
func existingName(opts *globalOptions, target string) string {
	path := target
	if opts.configPath != "" {
		path = opts.configPath
	}
	cfg, err := config.New().Load(path)
	if err != nil {
		return ""
	}
	return cfg.Name
}
