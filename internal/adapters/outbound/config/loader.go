package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/paths"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration written by `devtool init`.
const FileName = domain.ConfigFileName

// candidates are tried in order in the working directory.
var candidates = []string{FileName, "devtool.yml", "devtool.toml"}

// userFileName lives in the user config directory.
const userFileName = "config.yaml"

// Loader implements domain.ConfigLoader and domain.ConfigWriter for YAML and
// TOML files, chosen by extension.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads, decodes and validates the config at path, then applies defaults.
// Every failure is a *domain.ConfigError carrying path.
func (l *Loader) Load(path string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ProjectConfig{}, &domain.ConfigError{Path: path, Err: domain.ErrConfigNotFound}
		}
		return domain.ProjectConfig{}, &domain.ConfigError{Path: path, Err: err}
	}

	var cfg domain.ProjectConfig
	if err := decode(path, data, &cfg); err != nil {
		return domain.ProjectConfig{}, &domain.ConfigError{Path: path, Err: fmt.Errorf("parsing: %w", err)}
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, &domain.ConfigError{Path: path, Err: fmt.Errorf("invalid: %w", err)}
	}

	return cfg.WithDefaults(), nil
}

// Save encodes cfg in the format implied by path's extension.
func (l *Loader) Save(path string, cfg domain.ProjectConfig) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Locate returns the config path to load. An explicit path wins; otherwise
// the working-directory candidates and then the user config are tried. When
// nothing exists the first candidate is returned so the load error names it.
func Locate(r paths.Resolver, explicit string) string {
	if explicit != "" {
		return r.Resolve(explicit)
	}
	for _, name := range candidates {
		p := r.Resolve(name)
		if fileExists(p) {
			return p
		}
	}
	if dir, err := r.ConfigDir(); err == nil {
		p := filepath.Join(dir, userFileName)
		if fileExists(p) {
			return p
		}
	}
	return r.Resolve(FileName)
}

func decode(path string, data []byte, cfg *domain.ProjectConfig) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
