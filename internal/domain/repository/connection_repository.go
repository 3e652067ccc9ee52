package repository

import (
	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
)

// ConnectionRepository writes the Steampipe connection file.
type ConnectionRepository interface {
	Path() string

	// Write overwrites the file with the given set, creating its directory if needed.
	Write(set entity.ConnectionSet) error

	Clear() (bool, error)
}
