package repository

import (
	"context"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
)

// CommandRunner invokes the AWS command-line tool and captures its output.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) entity.CommandResult
}
