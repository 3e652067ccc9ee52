package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/diillson/aws-sso-manager-go/internal/application/usecase"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/diillson/aws-sso-manager-go/pkg/console"
	"github.com/diillson/aws-sso-manager-go/pkg/version"
)

// UseCaseFactory builds the use case once the managed file paths are known.
type UseCaseFactory func(paths types.Paths) *usecase.SSOUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	newUseCase UseCaseFactory
	version    string

	config  *types.Config
	useCase *usecase.SSOUseCase
}

// prepareFlagNames maps PrepareArgs fields to the flags that set them.
var prepareFlagNames = map[string]string{
	"RoleName":   "--role",
	"AccountIDs": "--ids",
	"StartURL":   "--url",
	"SSORegion":  "--sso-region",
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
	}

	rootCmd := &cobra.Command{
		Use:               "aws-sso-manager",
		Short:             "Bulk AWS CLI SSO profiles, login and Steampipe connections",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS SSO Manager version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON file with default values")
	rootCmd.PersistentFlags().String("aws-config", "", "AWS CLI config file (default: ~/.aws/config)")
	rootCmd.PersistentFlags().String("steampipe-config", "", "Steampipe connection file (default: ~/.steampipe/config/aws.spc)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug messages")

	rootCmd.AddCommand(
		app.newPrepareCmd(),
		app.newAuthenticateCmd(),
		app.newGenerateConnectionsCmd(),
		app.newClearProfileConfigCmd(),
		app.newClearConnectionConfigCmd(),
		app.newListCmd(),
		app.newWhoAmICmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// SetUseCaseFactory sets how the CLI app builds its use case.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.newUseCase = factory
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// setup loads the optional config file, resolves the managed paths and
// builds the use case before any subcommand runs.
func (app *CLIApp) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if debug, _ := flags.GetBool("debug"); debug {
		console.EnableDebug()
	}

	app.config = &types.Config{}
	if configFile, _ := flags.GetString("config-file"); configFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		app.config = cfg
	}

	paths, err := app.resolvePaths(cmd)
	if err != nil {
		return err
	}

	if app.newUseCase == nil {
		return errors.New("use case factory not configured")
	}
	app.useCase = app.newUseCase(paths)
	return nil
}

// resolvePaths applies defaults, then the config file, then explicit flags.
func (app *CLIApp) resolvePaths(cmd *cobra.Command) (types.Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return types.Paths{}, fmt.Errorf("error getting user home dir: %w", err)
	}

	paths := types.Paths{
		AWSConfig:       filepath.Join(home, ".aws", "config"),
		SteampipeConfig: filepath.Join(home, ".steampipe", "config", "aws.spc"),
	}
	if app.config.AWSConfig != "" {
		paths.AWSConfig = app.config.AWSConfig
	}
	if app.config.SteampipeConfig != "" {
		paths.SteampipeConfig = app.config.SteampipeConfig
	}

	for flag, target := range map[string]*string{
		"aws-config":       &paths.AWSConfig,
		"steampipe-config": &paths.SteampipeConfig,
	} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		expanded, err := homedir.Expand(value)
		if err != nil {
			return types.Paths{}, fmt.Errorf("error expanding --%s: %w", flag, err)
		}
		*target = expanded
	}
	return paths, nil
}

// parsePrepareArgs merges the prepare flags over the config file values.
func (app *CLIApp) parsePrepareArgs(cmd *cobra.Command) (*types.PrepareArgs, error) {
	flags := cmd.Flags()
	args := &types.PrepareArgs{
		RoleName:   app.config.Role,
		AccountIDs: app.config.IDs,
		StartURL:   app.config.URL,
		SSORegion:  app.config.SSORegion,
		Region:     app.config.Region,
	}

	stringFlags := map[string]*string{
		"role":       &args.RoleName,
		"url":        &args.StartURL,
		"sso-region": &args.SSORegion,
		"region":     &args.Region,
	}
	for name, target := range stringFlags {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	if flags.Changed("ids") {
		raw, _ := flags.GetString("ids")
		ids, err := parseAccountIDs(raw)
		if err != nil {
			return nil, err
		}
		args.AccountIDs = ids
	}

	if err := validatePrepareArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

func validatePrepareArgs(args *types.PrepareArgs) error {
	err := validator.New().Struct(args)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, prepareFlagNames[fe.StructField()])
	}
	return fmt.Errorf("%w: %s", types.ErrMissingPrepareInput, strings.Join(missing, ", "))
}
