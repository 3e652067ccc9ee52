package repository

import (
	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
)

// ProfileRepository persists SSO profiles in the AWS CLI config file.
type ProfileRepository interface {
	// Path returns the location of the backing file.
	Path() string

	// UpsertProfiles loads the whole file, writes or overwrites one section
	// per profile and saves the file back.
	UpsertProfiles(profiles []entity.SSOProfile) error

	// ListProfiles returns the managed profiles in file order. A missing
	// file yields an empty list.
	ListProfiles() ([]entity.SSOProfile, error)

	// Clear removes the file. It returns false when there was nothing to remove.
	Clear() (bool, error)
}
