package awscli

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell as the fake binary")
	}
}

func TestRun_CapturesOutputAndExitCode(t *testing.T) {
	skipOnWindows(t)
	runner := NewCommandRunner("sh")

	res := runner.Run(context.Background(), "-c", "echo out; echo err >&2; exit 3")

	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.NoError(t, res.Err)
	assert.False(t, res.Success())
	assert.Equal(t, "err", res.ErrorOutput())
}

func TestRun_Success(t *testing.T) {
	skipOnWindows(t)
	runner := NewCommandRunner("sh")

	res := runner.Run(context.Background(), "-c", "echo '{\"Account\": \"111\"}'")

	require.True(t, res.Success())
	assert.Contains(t, res.Stdout, `"Account": "111"`)
	assert.Equal(t, []string{"-c", "echo '{\"Account\": \"111\"}'"}, res.Args)
}

func TestRun_MissingBinary(t *testing.T) {
	skipOnWindows(t)
	runner := NewCommandRunner("definitely-not-an-aws-binary")

	res := runner.Run(context.Background(), "sso", "login")

	assert.Error(t, res.Err)
	assert.Equal(t, -1, res.ExitCode)
	assert.False(t, res.Success())
	assert.NotEmpty(t, res.ErrorOutput())
}

func TestNewCommandRunner_DefaultsToAWS(t *testing.T) {
	runner := NewCommandRunner("").(*CommandRunnerImpl)
	assert.Equal(t, DefaultBinary, runner.binary)
}
