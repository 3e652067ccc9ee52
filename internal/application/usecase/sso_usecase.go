package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
)

// SSOUseCase handles profile preparation, authentication and connection generation.
type SSOUseCase struct {
	profileRepo    repository.ProfileRepository
	connectionRepo repository.ConnectionRepository
	runner         repository.CommandRunner
	awsRepo        repository.AWSRepository
	console        types.ConsoleInterface
}

// NewSSOUseCase creates a new SSO use case.
func NewSSOUseCase(
	profileRepo repository.ProfileRepository,
	connectionRepo repository.ConnectionRepository,
	runner repository.CommandRunner,
	awsRepo repository.AWSRepository,
	console types.ConsoleInterface,
) *SSOUseCase {
	return &SSOUseCase{
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		runner:         runner,
		awsRepo:        awsRepo,
		console:        console,
	}
}

// PrepareProfiles writes one SSO profile per account ID into the AWS config file.
func (uc *SSOUseCase) PrepareProfiles(args *types.PrepareArgs) ([]entity.SSOProfile, error) {
	uc.console.LogInfo("Preparing AWS configuration...")

	profiles := make([]entity.SSOProfile, 0, len(args.AccountIDs))
	for _, id := range args.AccountIDs {
		profiles = append(profiles, entity.NewSSOProfile(id, args.RoleName, args.StartURL, args.SSORegion, args.Region))
	}
	uc.console.LogDebug("Writing %d profiles to %s", len(profiles), uc.profileRepo.Path())

	if err := uc.profileRepo.UpsertProfiles(profiles); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	uc.console.LogSuccess("AWS configuration updated successfully for profiles: %s", strings.Join(names, ", "))
	return profiles, nil
}

// ClearProfileConfig deletes the AWS config file.
func (uc *SSOUseCase) ClearProfileConfig() (bool, error) {
	removed, err := uc.profileRepo.Clear()
	if err != nil {
		return false, err
	}
	if removed {
		uc.console.LogSuccess("AWS configuration cleared.")
	} else {
		uc.console.LogWarning("Configuration file not found.")
	}
	return removed, nil
}

// ClearConnectionConfig deletes the generated Steampipe connection file.
func (uc *SSOUseCase) ClearConnectionConfig() (bool, error) {
	removed, err := uc.connectionRepo.Clear()
	if err != nil {
		return false, err
	}
	if removed {
		uc.console.LogSuccess("Steampipe AWS connection file cleared.")
	} else {
		uc.console.LogWarning("Steampipe AWS connection file not found.")
	}
	return removed, nil
}

// GenerateConnections rewrites the Steampipe connection file from the current profiles.
func (uc *SSOUseCase) GenerateConnections() (entity.ConnectionSet, error) {
	profiles, err := uc.profileRepo.ListProfiles()
	if err != nil {
		return entity.ConnectionSet{}, err
	}

	set := entity.NewConnectionSet(profiles)
	if err := uc.connectionRepo.Write(set); err != nil {
		return entity.ConnectionSet{}, fmt.Errorf("failed to write connections: %w", err)
	}

	uc.console.LogDebug("Wrote %d connections to %s", len(set.Connections), uc.connectionRepo.Path())
	uc.console.LogSuccess("Steampipe aws.spc file updated with all profiles.")
	return set, nil
}
