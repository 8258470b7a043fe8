package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigNotFound indicates no configuration file exists at any lookup location.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrProjectExists indicates the target directory already has a devtool config.
	ErrProjectExists = errors.New("project already initialized")
)

// ConfigError reports a configuration file that is missing or malformed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ReadError reports a file that could not be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// CheckFailure is returned after a complete check run that found issues.
type CheckFailure struct {
	Files  int
	Issues int
}

func (e *CheckFailure) Error() string {
	return fmt.Sprintf("check failed with %d issue(s) in %d file(s)", e.Issues, e.Files)
}

// BuildError reports a build tool that exited unsuccessfully.
type BuildError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *BuildError) Unwrap() error { return e.Err }
