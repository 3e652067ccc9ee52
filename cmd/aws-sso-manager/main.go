package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/awscli"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/awsconfig"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/config"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driven/steampipe"
	"github.com/diillson/aws-sso-manager-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-sso-manager-go/internal/application/usecase"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/diillson/aws-sso-manager-go/pkg/console"
	"github.com/diillson/aws-sso-manager-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository())

	consoleImpl := console.NewConsole()
	runner := awscli.NewCommandRunner(awscli.DefaultBinary)

	// Os repositórios dependem dos caminhos resolvidos pelas flags
	app.SetUseCaseFactory(func(paths types.Paths) *usecase.SSOUseCase {
		return usecase.NewSSOUseCase(
			awsconfig.NewProfileRepository(paths.AWSConfig),
			steampipe.NewConnectionRepository(paths.SteampipeConfig),
			runner,
			aws.NewAWSRepository(paths.AWSConfig),
			consoleImpl,
		)
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
