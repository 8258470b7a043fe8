package domain

import (
	"fmt"
	"strings"
)

const (
	ConfigFileName   = "devtool.yaml"
	DefaultTargetDir = "target"
	DefaultBuildTool = "cargo"
)

// DefaultRules is the rule set written by `devtool init`.
var DefaultRules = []string{"no-todo", "no-fixme"}

// ProjectConfig holds project-level configuration loaded from devtool.yaml
// (or devtool.toml).
type ProjectConfig struct {
	Name    string      `yaml:"name"    toml:"name"    json:"name"`
	Version string      `yaml:"version" toml:"version" json:"version,omitempty"`
	Build   BuildConfig `yaml:"build"   toml:"build"   json:"build"`
	Check   CheckConfig `yaml:"check"   toml:"check"   json:"check"`
}

// BuildConfig configures the external build tool invocation.
type BuildConfig struct {
	TargetDir string   `yaml:"target_dir"     toml:"target_dir"     json:"target_dir"`
	Features  []string `yaml:"features"       toml:"features"       json:"features"`
	Tool      string   `yaml:"tool,omitempty" toml:"tool,omitempty" json:"tool,omitempty"`
}

// CheckConfig lists the rule identifiers to apply and the path substrings to skip.
type CheckConfig struct {
	Rules          []string `yaml:"rules"           toml:"rules"           json:"rules"`
	IgnorePatterns []string `yaml:"ignore_patterns" toml:"ignore_patterns" json:"ignore_patterns"`
}

// DefaultConfig returns the configuration `devtool init` writes for a new project.
func DefaultConfig(name string) ProjectConfig {
	return ProjectConfig{
		Name:    name,
		Version: "0.1.0",
		Build: BuildConfig{
			TargetDir: DefaultTargetDir,
			Features:  []string{},
		},
		Check: CheckConfig{
			Rules:          append([]string(nil), DefaultRules...),
			IgnorePatterns: []string{},
		},
	}
}

// WithDefaults fills unset optional fields. The receiver is not modified.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	if c.Build.TargetDir == "" {
		c.Build.TargetDir = DefaultTargetDir
	}
	if c.Build.Tool == "" {
		c.Build.Tool = DefaultBuildTool
	}
	return c
}

// Validate checks the raw config for values that cannot be defaulted. Rule
// identifiers are not checked: unknown or blank ones are skipped when checking.
func (c ProjectConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	for i, f := range c.Build.Features {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("build.features[%d] is empty", i)
		}
	}
	return nil
}
