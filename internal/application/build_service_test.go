package application_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/devtool/internal/application"
	"github.com/openkraft/devtool/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runCall struct {
	dir     string
	program string
	args    []string
}

type fakeRunner struct {
	calls   []runCall
	out     domain.CommandOutput
	err     error
	missing bool
	onRun   func(dir string)
}

func (f *fakeRunner) Run(_ context.Context, dir, program string, args ...string) (domain.CommandOutput, error) {
	f.calls = append(f.calls, runCall{dir: dir, program: program, args: args})
	if f.onRun != nil {
		f.onRun(dir)
	}
	return f.out, f.err
}

func (f *fakeRunner) Exists(string) bool { return !f.missing }

type fakeGit struct {
	repo   bool
	hash   string
	inited []string
}

func (g *fakeGit) IsGitRepo(string) bool { return g.repo }

func (g *fakeGit) CommitHash(string) (string, error) {
	if g.hash == "" {
		return "", errors.New("no HEAD")
	}
	return g.hash, nil
}

func (g *fakeGit) Init(path string) error {
	g.inited = append(g.inited, path)
	g.repo = true
	return nil
}

func buildConfig() domain.ProjectConfig {
	return domain.ProjectConfig{
		Name:  "demo",
		Build: domain.BuildConfig{TargetDir: "target", Features: []string{"serde", "tokio"}},
	}
}

func TestBuildArgs(t *testing.T) {
	cfg := buildConfig()
	assert.Equal(t, []string{"build", "--features", "serde,tokio"}, application.BuildArgs(cfg, false))
	assert.Equal(t, []string{"build", "--release", "--features", "serde,tokio"}, application.BuildArgs(cfg, true))

	cfg.Build.Features = nil
	assert.Equal(t, []string{"build"}, application.BuildArgs(cfg, false))
	assert.Equal(t, []string{"build", "--release"}, application.BuildArgs(cfg, true))
}

func TestArtifactPath(t *testing.T) {
	cfg := buildConfig()
	assert.Equal(t, filepath.Join("target", "debug", "demo"), application.ArtifactPath(cfg, false))
	assert.Equal(t, filepath.Join("target", "release", "demo"), application.ArtifactPath(cfg, true))
}

func TestBuildService_RunsToolInProjectDir(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{out: domain.CommandOutput{Stdout: "Finished"}}
	svc := application.NewBuildService(runner, &fakeGit{}, nil)

	result, err := svc.Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: dir, Release: true})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, dir, runner.calls[0].dir)
	assert.Equal(t, "cargo", runner.calls[0].program)
	assert.Equal(t, []string{"build", "--release", "--features", "serde,tokio"}, runner.calls[0].args)

	assert.Equal(t, "release", result.Profile)
	assert.DirExists(t, filepath.Join(dir, "target", "release"))
	assert.Equal(t, "Finished", result.Stdout)
	assert.Zero(t, result.ArtifactSize)
}

func TestBuildService_CustomTool(t *testing.T) {
	runner := &fakeRunner{}
	cfg := buildConfig()
	cfg.Build.Tool = "make"
	_, err := application.NewBuildService(runner, nil, nil).Build(context.Background(), cfg, application.BuildRequest{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "make", runner.calls[0].program)
}

func TestBuildService_ReportsArtifactSize(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{onRun: func(dir string) {
		_ = os.WriteFile(filepath.Join(dir, "target", "debug", "demo"), make([]byte, 2048), 0755)
	}}
	result, err := application.NewBuildService(runner, nil, nil).Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "target", "debug", "demo"), result.ArtifactPath)
	assert.Equal(t, int64(2048), result.ArtifactSize)
}

func TestBuildService_ToolFailureCarriesStderr(t *testing.T) {
	runner := &fakeRunner{
		out: domain.CommandOutput{Stderr: "error: could not compile `demo`", ExitCode: 101},
		err: errors.New("exit status 101"),
	}
	_, err := application.NewBuildService(runner, nil, nil).Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: t.TempDir()})

	var be *domain.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "cargo", be.Tool)
	assert.Contains(t, err.Error(), "could not compile")
}

func TestBuildService_ToolMissing(t *testing.T) {
	runner := &fakeRunner{missing: true}
	_, err := application.NewBuildService(runner, nil, nil).Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cargo not found in PATH")
	assert.Empty(t, runner.calls)
}

func TestBuildService_RecordsCommit(t *testing.T) {
	git := &fakeGit{repo: true, hash: "0123456789abcdef0123456789abcdef01234567"}
	result, err := application.NewBuildService(&fakeRunner{}, git, nil).Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, git.hash, result.Commit)
}

func TestBuildService_RepoWithoutCommits(t *testing.T) {
	git := &fakeGit{repo: true}
	result, err := application.NewBuildService(&fakeRunner{}, git, nil).Build(context.Background(), buildConfig(), application.BuildRequest{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Commit)
}

func TestBuildService_Clean(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target", "debug")
	require.NoError(t, os.MkdirAll(target, 0755))

	removed, err := application.NewBuildService(&fakeRunner{}, nil, nil).Clean(buildConfig(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "target"), removed)
	assert.NoDirExists(t, filepath.Join(dir, "target"))
}

func TestBuildService_CleanMissingIsNoop(t *testing.T) {
	_, err := application.NewBuildService(&fakeRunner{}, nil, nil).Clean(buildConfig(), t.TempDir())
	assert.NoError(t, err)
}

func TestBuildService_CleanRefusesProjectDir(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig()
	cfg.Build.TargetDir = "."

	_, err := application.NewBuildService(&fakeRunner{}, nil, nil).Clean(cfg, dir)
	require.Error(t, err)
	assert.DirExists(t, dir)
}
