package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/awsconfig"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/config"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/steampipe"
	"github.com/diillson/aws-sso-manager-go/internal/application/usecase"
	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/diillson/aws-sso-manager-go/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okRunner struct {
	calls [][]string
}

func (r *okRunner) Run(_ context.Context, args ...string) entity.CommandResult {
	r.calls = append(r.calls, args)
	return entity.CommandResult{Args: args, Stdout: "{}"}
}

type harness struct {
	dir     string
	awsPath string
	spcPath string
	runner  *okRunner
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	return &harness{
		dir:     dir,
		awsPath: filepath.Join(dir, "aws", "config"),
		spcPath: filepath.Join(dir, "steampipe", "aws.spc"),
		runner:  &okRunner{},
	}
}

// run executes the CLI with fresh flag state.
func (h *harness) run(args ...string) error {
	app := NewCLIApp("test", config.NewConfigRepository())
	app.SetUseCaseFactory(func(paths types.Paths) *usecase.SSOUseCase {
		return usecase.NewSSOUseCase(
			awsconfig.NewProfileRepository(paths.AWSConfig),
			steampipe.NewConnectionRepository(paths.SteampipeConfig),
			h.runner,
			nil,
			console.NewConsole(),
		)
	})
	app.rootCmd.SetArgs(append(args, "--aws-config", h.awsPath, "--steampipe-config", h.spcPath))
	return app.Execute()
}

func TestPrepareThenGenerate(t *testing.T) {
	h := newHarness(t)

	err := h.run("prepare",
		"-r", "ReadOnly",
		"-i", "['111', '222']",
		"-u", "https://x.awsapps.com/start",
		"-s", "us-east-1",
	)
	require.NoError(t, err)

	profiles, err := awsconfig.NewProfileRepository(h.awsPath).ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "aws_111", profiles[0].Name)
	assert.Equal(t, "ReadOnly", profiles[1].RoleName)

	err = h.run("steampipe")
	require.NoError(t, err)
	data, err := os.ReadFile(h.spcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `connections = ["aws_aws_111", "aws_aws_222"]`)

	err = h.run("auth")
	require.NoError(t, err)
	assert.Len(t, h.runner.calls, 4)

	err = h.run("clear-profile-config")
	require.NoError(t, err)
	assert.NoFileExists(t, h.awsPath)

	err = h.run("clear_steampipe")
	require.NoError(t, err)
	assert.NoFileExists(t, h.spcPath)
}

func TestPrepare_MalformedIDsWritesNothing(t *testing.T) {
	h := newHarness(t)

	err := h.run("prep", "-r", "ReadOnly", "-i", "[111, 222]", "-u", "https://x", "-s", "us-east-1")
	require.ErrorIs(t, err, types.ErrMalformedAccountIDs)
	assert.NoFileExists(t, h.awsPath)
}

func TestPrepare_MissingInputs(t *testing.T) {
	h := newHarness(t)

	err := h.run("prepare", "-i", "['111']")
	require.ErrorIs(t, err, types.ErrMissingPrepareInput)
	assert.Contains(t, err.Error(), "--role")
	assert.Contains(t, err.Error(), "--url")
	assert.Contains(t, err.Error(), "--sso-region")
	assert.NotContains(t, err.Error(), "--ids")
}

func TestPrepare_FlagsOverrideConfigFile(t *testing.T) {
	h := newHarness(t)
	cfgPath := filepath.Join(h.dir, "defaults.yaml")
	content := "role: ReadOnly\nids: ['111']\nurl: https://x.awsapps.com/start\nsso_region: us-east-1\nregion: eu-west-1\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))

	err := h.run("prepare", "-C", cfgPath, "-r", "Admin")
	require.NoError(t, err)

	profiles, err := awsconfig.NewProfileRepository(h.awsPath).ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Admin", profiles[0].RoleName)
	assert.Equal(t, "eu-west-1", profiles[0].Region)
	assert.Equal(t, "https://x.awsapps.com/start", profiles[0].StartURL)
}

func TestResolvePaths_ConfigFileThenFlags(t *testing.T) {
	h := newHarness(t)
	cfgPath := filepath.Join(h.dir, "defaults.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("steampipe_config = \"/from/file/aws.spc\"\n"), 0600))

	var got types.Paths
	app := NewCLIApp("test", config.NewConfigRepository())
	app.SetUseCaseFactory(func(paths types.Paths) *usecase.SSOUseCase {
		got = paths
		return usecase.NewSSOUseCase(
			awsconfig.NewProfileRepository(paths.AWSConfig),
			steampipe.NewConnectionRepository(paths.SteampipeConfig),
			h.runner,
			nil,
			console.NewConsole(),
		)
	})
	app.rootCmd.SetArgs([]string{"clear-profile-config", "-C", cfgPath, "--aws-config", h.awsPath})

	require.NoError(t, app.Execute())
	assert.Equal(t, h.awsPath, got.AWSConfig)
	assert.Equal(t, "/from/file/aws.spc", got.SteampipeConfig)
}
