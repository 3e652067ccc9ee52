package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSSOProfile(t *testing.T) {
	p := NewSSOProfile("111", "ReadOnly", "https://x.awsapps.com/start", "us-east-1", " eu-west-1\n")

	assert.Equal(t, "aws_111", p.Name)
	assert.Equal(t, "profile aws_111", p.SectionName())
	assert.Equal(t, "json", p.Output)
	assert.Equal(t, "eu-west-1", p.Region)
	assert.True(t, p.HasRegion())

	blank := NewSSOProfile("222", "ReadOnly", "u", "us-east-1", "   ")
	assert.False(t, blank.HasRegion())
}

func TestSectionHelpers(t *testing.T) {
	tests := []struct {
		section string
		managed bool
		name    string
	}{
		{"profile aws_111", true, "aws_111"},
		{"profile aws_", true, "aws_"},
		{"profile personal", false, "personal"},
		{"default", false, "default"},
		{"sso-session corp", false, "sso-session corp"},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.Equal(t, tt.managed, IsManagedSection(tt.section))
			assert.Equal(t, tt.name, ProfileNameFromSection(tt.section))
		})
	}
}

func TestNewConnectionSet(t *testing.T) {
	set := NewConnectionSet([]SSOProfile{
		{Name: "aws_333", Region: "sa-east-1"},
		{Name: "aws_111"},
	})

	assert.Equal(t, []Connection{
		{Name: "aws_aws_333", Plugin: "aws", Profile: "aws_333", Regions: []string{"sa-east-1"}},
		{Name: "aws_aws_111", Plugin: "aws", Profile: "aws_111", Regions: []string{"*"}},
	}, set.Connections)
	assert.Equal(t, Aggregator{
		Name:        "aws",
		Plugin:      "aws",
		Type:        "aggregator",
		Connections: []string{"aws_aws_333", "aws_aws_111"},
	}, set.Aggregator)
}

func TestCommandResult(t *testing.T) {
	assert.True(t, CommandResult{}.Success())
	assert.False(t, CommandResult{ExitCode: 2, Stderr: " boom \n"}.Success())
	assert.Equal(t, "boom", CommandResult{ExitCode: 2, Stderr: " boom \n"}.ErrorOutput())

	startErr := CommandResult{ExitCode: -1, Err: errors.New("exec: \"aws\": executable file not found")}
	assert.False(t, startErr.Success())
	assert.Contains(t, startErr.ErrorOutput(), "executable file not found")
}

func TestAuthResultSuccess(t *testing.T) {
	assert.True(t, AuthResult{LoggedIn: true}.Success())
	assert.False(t, AuthResult{LoggedIn: true, IdentityError: "expired"}.Success())
	assert.False(t, AuthResult{LoginError: "denied"}.Success())
}
