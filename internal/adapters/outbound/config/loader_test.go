package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/openkraft/devtool/internal/adapters/outbound/config"
	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoader_ValidYAML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.yaml", `
name: demo
version: 1.2.0
build:
  target_dir: out
  features: [serde, tokio]
check:
  rules: [no-todo, no-fixme]
  ignore_patterns: [vendor/]
`)
	cfg, err := appconfig.New().Load(p)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "out", cfg.Build.TargetDir)
	assert.Equal(t, []string{"serde", "tokio"}, cfg.Build.Features)
	assert.Equal(t, "cargo", cfg.Build.Tool, "tool defaults when unset")
	assert.Equal(t, []string{"no-todo", "no-fixme"}, cfg.Check.Rules)
	assert.Equal(t, []string{"vendor/"}, cfg.Check.IgnorePatterns)
}

func TestLoader_ValidTOML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.toml", `
name = "demo"
version = "0.1.0"

[build]
target_dir = "target"
features = ["full"]
tool = "make"

[check]
rules = ["no-fixme"]
ignore_patterns = []
`)
	cfg, err := appconfig.New().Load(p)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, []string{"full"}, cfg.Build.Features)
	assert.Equal(t, "make", cfg.Build.Tool)
	assert.Equal(t, []string{"no-fixme"}, cfg.Check.Rules)
}

func TestLoader_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "devtool.yaml")
	_, err := appconfig.New().Load(p)

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, p, cfgErr.Path)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_InvalidYAML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.yaml", `{{{invalid yaml`)
	_, err := appconfig.New().Load(p)

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "parsing")
	assert.Contains(t, err.Error(), p)
}

func TestLoader_InvalidTOML(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.toml", `name = `)
	_, err := appconfig.New().Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoader_MissingName(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.yaml", "build:\n  target_dir: out\n")
	_, err := appconfig.New().Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoader_SaveRoundTripYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "devtool.yaml")
	loader := appconfig.New()
	require.NoError(t, loader.Save(p, domain.DefaultConfig("demo")))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: demo")
	assert.Contains(t, string(data), "target_dir: target")
	assert.NotContains(t, string(data), "tool:")

	cfg, err := loader.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "0.1.0", cfg.Version)
	assert.Equal(t, domain.DefaultRules, cfg.Check.Rules)
	assert.Empty(t, cfg.Build.Features)
	assert.Empty(t, cfg.Check.IgnorePatterns)
}

func TestLoader_SaveTOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "devtool.toml")
	loader := appconfig.New()
	require.NoError(t, loader.Save(p, domain.DefaultConfig("demo")))

	cfg, err := loader.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, domain.DefaultRules, cfg.Check.Rules)
}

func TestLocate_Explicit(t *testing.T) {
	dir := t.TempDir()
	r := paths.Resolver{WorkDir: dir}
	assert.Equal(t, filepath.Join(dir, "custom.toml"), appconfig.Locate(r, "custom.toml"))
}

func TestLocate_PrefersYAMLOverTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "devtool.toml", `name = "x"`)
	writeConfig(t, dir, "devtool.yaml", `name: x`)

	got := appconfig.Locate(paths.Resolver{WorkDir: dir}, "")
	assert.Equal(t, filepath.Join(dir, "devtool.yaml"), got)
}

func TestLocate_FallsBackToTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "devtool.toml", `name = "x"`)

	got := appconfig.Locate(paths.Resolver{WorkDir: dir}, "")
	assert.Equal(t, filepath.Join(dir, "devtool.toml"), got)
}

func TestLocate_UserConfigDir(t *testing.T) {
	work, home := t.TempDir(), t.TempDir()
	want := writeConfig(t, home, filepath.Join(".config", "devtool", "config.yaml"), "name: global\n")

	got := appconfig.Locate(paths.Resolver{WorkDir: work, Home: home}, "")
	assert.Equal(t, want, got)
}

func TestLocate_NothingFound(t *testing.T) {
	work := t.TempDir()
	got := appconfig.Locate(paths.Resolver{WorkDir: work}, "")
	assert.Equal(t, filepath.Join(work, "devtool.yaml"), got)
}

func TestLoader_BlankRulesAreSkippedNotRejected(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "devtool.yaml", "name: demo\ncheck:\n  rules: [\"no-todo\", \"\", \" \"]\n")

	cfg, err := appconfig.New().Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"no-todo", "", " "}, cfg.Check.Rules)
}
