package cli

import (
	"github.com/spf13/cobra"
)

func (app *CLIApp) newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prepare",
		Aliases: []string{"prep"},
		Short:   "Write one SSO profile per account ID into the AWS config file",
		Example: `  aws-sso-manager prepare -r ReadOnly -i "['111111111111', '222222222222']" \
    -u https://example.awsapps.com/start -s us-east-1 -e eu-west-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prepareArgs, err := app.parsePrepareArgs(cmd)
			if err != nil {
				return err
			}
			_, err = app.useCase.PrepareProfiles(prepareArgs)
			return err
		},
	}

	cmd.Flags().StringP("role", "r", "", "Role name to use with AWS SSO")
	cmd.Flags().StringP("ids", "i", "", "Formatted list of AWS account IDs, e.g. \"['111', '222']\"")
	cmd.Flags().StringP("url", "u", "", "SSO start URL")
	cmd.Flags().StringP("sso-region", "s", "", "SSO region for the AWS SSO configuration")
	cmd.Flags().StringP("region", "e", "", "AWS region for the profiles")
	return cmd
}

func (app *CLIApp) newAuthenticateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "authenticate",
		Aliases: []string{"auth"},
		Short:   "Run aws sso login and get-caller-identity for every profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.Authenticate(cmd.Context())
			return err
		},
	}
}

func (app *CLIApp) newGenerateConnectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate-connections",
		Aliases: []string{"steampipe"},
		Short:   "Create Steampipe connections for every profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.GenerateConnections()
			return err
		},
	}
}

func (app *CLIApp) newClearProfileConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear-profile-config",
		Aliases: []string{"clear"},
		Short:   "Delete the AWS config file",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.ClearProfileConfig()
			return err
		},
	}
}

func (app *CLIApp) newClearConnectionConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear-connection-config",
		Aliases: []string{"clear_steampipe", "clear-steampipe"},
		Short:   "Delete the generated Steampipe connection file",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.ClearConnectionConfig()
			return err
		},
	}
}

func (app *CLIApp) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the managed SSO profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.ListProfiles()
			return err
		},
	}
}

func (app *CLIApp) newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Resolve the caller identity of every profile through the AWS SDK",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.useCase.WhoAmI(cmd.Context())
			return err
		},
	}
}
