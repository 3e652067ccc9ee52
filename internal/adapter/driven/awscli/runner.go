package awscli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
)

// DefaultBinary is the AWS command-line tool.
const DefaultBinary = "aws"

// CommandRunnerImpl runs the AWS CLI synchronously and captures its output.
type CommandRunnerImpl struct {
	binary string
}

// NewCommandRunner cria um runner para o binário informado.
func NewCommandRunner(binary string) repository.CommandRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CommandRunnerImpl{binary: binary}
}

// createCommand wraps the call in cmd.exe on Windows so the aws.cmd shim resolves.
func (r *CommandRunnerImpl) createCommand(ctx context.Context, args ...string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		cmdArgs := append([]string{"/C", r.binary}, args...)
		return exec.CommandContext(ctx, "cmd", cmdArgs...)
	}
	return exec.CommandContext(ctx, r.binary, args...)
}

// Run blocks until the command exits. No timeout is applied.
func (r *CommandRunnerImpl) Run(ctx context.Context, args ...string) entity.CommandResult {
	var stdout, stderr bytes.Buffer

	cmd := r.createCommand(ctx, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := entity.CommandResult{Args: args}
	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.ExitCode = -1
		result.Err = err
	}
	return result
}
