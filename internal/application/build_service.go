package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkraft/devtool/internal/domain"
)

// BuildService runs the configured external build tool.
type BuildService struct {
	runner domain.CommandRunner
	git    domain.GitInfo
	logger *slog.Logger
}

// BuildRequest describes one build invocation.
type BuildRequest struct {
	ProjectDir string // Directory the tool runs in; relative target dirs resolve against it.
	Release    bool
}

// BuildResult summarizes a successful build.
type BuildResult struct {
	Profile      string
	OutputDir    string
	Args         []string
	ArtifactPath string
	ArtifactSize int64 // Zero when the artifact was not found.
	Commit       string
	Stdout       string
}

func NewBuildService(runner domain.CommandRunner, git domain.GitInfo, logger *slog.Logger) *BuildService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BuildService{runner: runner, git: git, logger: logger}
}

// Profile returns "release" or "debug".
func Profile(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}

// BuildArgs assembles the tool arguments: build [--release] [--features a,b].
func BuildArgs(cfg domain.ProjectConfig, release bool) []string {
	args := []string{"build"}
	if release {
		args = append(args, "--release")
	}
	if features := strings.Join(cfg.Build.Features, ","); features != "" {
		args = append(args, "--features", features)
	}
	return args
}

// ArtifactPath returns <target_dir>/<profile>/<name>.
func ArtifactPath(cfg domain.ProjectConfig, release bool) string {
	return filepath.Join(cfg.Build.TargetDir, Profile(release), cfg.Name)
}

// Build prepares the output directory and runs the build tool.
func (s *BuildService) Build(ctx context.Context, cfg domain.ProjectConfig, req BuildRequest) (*BuildResult, error) {
	cfg = cfg.WithDefaults()
	projectDir := req.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	result := &BuildResult{
		Profile: Profile(req.Release),
		Args:    BuildArgs(cfg, req.Release),
	}
	result.OutputDir = s.resolve(projectDir, filepath.Join(cfg.Build.TargetDir, result.Profile))
	result.ArtifactPath = s.resolve(projectDir, ArtifactPath(cfg, req.Release))

	if s.git != nil && s.git.IsGitRepo(projectDir) {
		if hash, err := s.git.CommitHash(projectDir); err == nil {
			result.Commit = hash
		} else {
			s.logger.Debug("no commit to record", "error", err)
		}
	}

	s.logger.Info("building project",
		"name", cfg.Name,
		"profile", result.Profile,
		"tool", cfg.Build.Tool,
		"commit", shortHash(result.Commit),
	)

	if err := os.MkdirAll(result.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", result.OutputDir, err)
	}

	if !s.runner.Exists(cfg.Build.Tool) {
		return nil, &domain.BuildError{
			Tool: cfg.Build.Tool,
			Args: result.Args,
			Err:  fmt.Errorf("%s not found in PATH", cfg.Build.Tool),
		}
	}

	out, err := s.runner.Run(ctx, projectDir, cfg.Build.Tool, result.Args...)
	if err != nil {
		return nil, &domain.BuildError{
			Tool:   cfg.Build.Tool,
			Args:   result.Args,
			Stderr: out.Stderr,
			Err:    err,
		}
	}
	result.Stdout = out.Stdout

	if info, err := os.Stat(result.ArtifactPath); err == nil && !info.IsDir() {
		result.ArtifactSize = info.Size()
	} else {
		s.logger.Debug("artifact not found", "path", result.ArtifactPath)
	}

	return result, nil
}

// Clean removes the configured target directory. A missing directory is not
// an error.
func (s *BuildService) Clean(cfg domain.ProjectConfig, projectDir string) (string, error) {
	cfg = cfg.WithDefaults()
	target := s.resolve(projectDir, cfg.Build.TargetDir)

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	if projAbs, err := filepath.Abs(projectDir); err == nil && abs == projAbs {
		return "", fmt.Errorf("refusing to remove project directory %s", abs)
	}

	s.logger.Info("cleaning target directory", "path", target)
	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("removing %s: %w", target, err)
	}
	return target, nil
}

func (s *BuildService) resolve(projectDir, path string) string {
	if filepath.IsAbs(path) || projectDir == "" {
		return path
	}
	return filepath.Join(projectDir, path)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
