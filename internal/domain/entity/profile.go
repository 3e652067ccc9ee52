package entity

import "strings"

const (
	// ProfileSectionPrefix identifica as seções gerenciadas pela ferramenta no ~/.aws/config.
	ProfileSectionPrefix = "profile aws_"

	profileKeyword = "profile "

	// DefaultOutput is the output format written to every managed profile.
	DefaultOutput = "json"
)

// SSOProfile represents one AWS CLI SSO profile entry.
type SSOProfile struct {
	Name      string `json:"name"`
	AccountID string `json:"sso_account_id"`
	StartURL  string `json:"sso_start_url"`
	SSORegion string `json:"sso_region"`
	RoleName  string `json:"sso_role_name"`
	Output    string `json:"output"`
	Region    string `json:"region,omitempty"`
}

// NewSSOProfile builds the profile entry for a single account ID.
// The region is trimmed and omitted when blank.
func NewSSOProfile(accountID, roleName, startURL, ssoRegion, region string) SSOProfile {
	return SSOProfile{
		Name:      ProfileNameForAccount(accountID),
		AccountID: accountID,
		StartURL:  startURL,
		SSORegion: ssoRegion,
		RoleName:  roleName,
		Output:    DefaultOutput,
		Region:    strings.TrimSpace(region),
	}
}

// SectionName returns the INI section that holds the profile.
func (p SSOProfile) SectionName() string {
	return profileKeyword + p.Name
}

// HasRegion reports whether an explicit default region is set.
func (p SSOProfile) HasRegion() bool {
	return p.Region != ""
}

// ProfileNameForAccount returns "aws_<account_id>".
func ProfileNameForAccount(accountID string) string {
	return strings.TrimPrefix(ProfileSectionPrefix, profileKeyword) + accountID
}

// IsManagedSection reports whether an INI section name belongs to a managed profile.
func IsManagedSection(section string) bool {
	return strings.HasPrefix(section, ProfileSectionPrefix)
}

// ProfileNameFromSection strips the "profile " keyword from a section name.
func ProfileNameFromSection(section string) string {
	return strings.TrimPrefix(section, profileKeyword)
}
