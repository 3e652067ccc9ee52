package repository

import (
	"context"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// GetCallerIdentity resolves the STS identity of a shared-config profile.
	GetCallerIdentity(ctx context.Context, profile string) (entity.CallerIdentity, error)
}
