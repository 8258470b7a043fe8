package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/openkraft/devtool/internal/domain"
)

// ExecRunner implements domain.CommandRunner with os/exec.
type ExecRunner struct{}

func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes program in dir and captures stdout and stderr separately. A
// non-zero exit is reported both in the returned output and as an error.
func (r *ExecRunner) Run(ctx context.Context, dir, program string, args ...string) (domain.CommandOutput, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := domain.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		out.ExitCode = -1
	}
	return out, err
}

// Exists reports whether program resolves on PATH.
func (r *ExecRunner) Exists(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}
