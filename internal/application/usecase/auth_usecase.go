package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/diillson/aws-sso-manager-go/pkg/console"
)

// Authenticate logs in every managed profile, one after another, and checks
// the caller identity of each one that logged in. A failure for one profile
// never stops the loop.
func (uc *SSOUseCase) Authenticate(ctx context.Context) ([]entity.AuthResult, error) {
	profiles, err := uc.profileRepo.ListProfiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		uc.console.LogWarning("No profiles matching '%s*' in %s", entity.ProfileSectionPrefix, uc.profileRepo.Path())
		return []entity.AuthResult{}, nil
	}

	results := make([]entity.AuthResult, 0, len(profiles))
	succeeded := 0
	for _, p := range profiles {
		res := uc.authenticateProfile(ctx, p.Name)
		if res.Success() {
			succeeded++
		}
		results = append(results, res)
	}

	if succeeded == len(results) {
		uc.console.LogSuccess("%d of %d profiles authenticated", succeeded, len(results))
	} else {
		uc.console.LogWarning("%d of %d profiles authenticated", succeeded, len(results))
	}
	return results, nil
}

func (uc *SSOUseCase) authenticateProfile(ctx context.Context, profile string) entity.AuthResult {
	res := entity.AuthResult{Profile: profile}
	uc.console.LogInfo("Authenticating %s...", profile)

	status := uc.console.Status(fmt.Sprintf("Waiting for aws sso login --profile %s", profile))
	login := uc.runner.Run(ctx, "sso", "login", "--profile", profile)
	if !login.Success() {
		status.Stop()
		res.LoginError = login.ErrorOutput()
		uc.console.LogError("Failed to authenticate %s: %s", profile, res.LoginError)
		return res
	}
	res.LoggedIn = true

	status.Update(fmt.Sprintf("Checking caller identity for %s", profile))
	identity := uc.runner.Run(ctx, "sts", "get-caller-identity", "--profile", profile)
	status.Stop()
	if !identity.Success() {
		res.IdentityError = identity.ErrorOutput()
		uc.console.LogError("Failed to get caller identity for %s: %s", profile, res.IdentityError)
		return res
	}

	res.Identity = strings.TrimSpace(identity.Stdout)
	uc.console.LogSuccess("Successfully authenticated. AWS caller identity for %s: %s", profile, res.Identity)
	return res
}

// ListProfiles prints the managed profiles as a table.
func (uc *SSOUseCase) ListProfiles() ([]entity.SSOProfile, error) {
	profiles, err := uc.profileRepo.ListProfiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, types.ErrNoSSOProfiles
	}

	table := uc.console.CreateTable()
	table.AddColumn("Profile")
	table.AddColumn("Account ID")
	table.AddColumn("Role")
	table.AddColumn("SSO Region")
	table.AddColumn("Region")
	table.AddColumn("Output")

	for _, p := range profiles {
		region := p.Region
		if !p.HasRegion() {
			region = console.BrightYellow(entity.WildcardRegion)
		}
		table.AddRow(console.BrightCyan(p.Name), p.AccountID, p.RoleName, p.SSORegion, region, p.Output)
	}

	uc.console.Println(table.Render())
	return profiles, nil
}

// WhoAmI resolves the caller identity of every managed profile through the
// SDK, using whatever SSO session is cached. Failures are reported per row.
func (uc *SSOUseCase) WhoAmI(ctx context.Context) ([]entity.CallerIdentity, error) {
	profiles, err := uc.profileRepo.ListProfiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, types.ErrNoSSOProfiles
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}

	identities := make([]entity.CallerIdentity, 0, len(profiles))
	progress := uc.console.Progress(names)
	for _, name := range names {
		identity, err := uc.awsRepo.GetCallerIdentity(ctx, name)
		if err != nil {
			identity.Profile = name
			identity.Error = err.Error()
			uc.console.LogDebug("identity lookup failed for %s: %v", name, err)
		}
		identities = append(identities, identity)
		progress.Increment()
	}
	progress.Stop()

	table := uc.console.CreateTable()
	table.AddColumn("Profile")
	table.AddColumn("Account")
	table.AddColumn("ARN")
	table.AddColumn("Status")

	for _, id := range identities {
		status := console.BrightGreen("OK")
		if id.Error != "" {
			status = console.BoldRed(id.Error)
		}
		table.AddRow(console.BrightCyan(id.Profile), id.Account, id.Arn, status)
	}

	uc.console.Println(table.Render())
	return identities, nil
}
