package domain

import "context"

// ConfigLoader loads a ProjectConfig from a file path.
type ConfigLoader interface {
	Load(path string) (ProjectConfig, error)
}

// ConfigWriter persists a ProjectConfig to a file path.
type ConfigWriter interface {
	Save(path string, cfg ProjectConfig) error
}

// SourceReader reads a file's full content as text.
type SourceReader interface {
	ReadSource(path string) (string, error)
}

// FileFinder enumerates files under a directory by extension.
type FileFinder interface {
	FindFiles(root, extension string) ([]string, error)
}

// CommandOutput captures the result of an external command.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external programs.
type CommandRunner interface {
	Run(ctx context.Context, dir, program string, args ...string) (CommandOutput, error)
	Exists(program string) bool
}

// GitInfo inspects and creates git repositories.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	Init(projectPath string) error
}

// TemplateSource renders named project templates.
type TemplateSource interface {
	Render(name string, data any) ([]byte, error)
}
