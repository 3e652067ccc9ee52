package entity

import "strings"

// CommandResult is the outcome of one external command invocation.
type CommandResult struct {
	Args     []string `json:"args"`
	ExitCode int      `json:"exit_code"`
	Stdout   string   `json:"stdout"`
	Stderr   string   `json:"stderr"`
	// Err is set when the process could not be started or waited on.
	Err error `json:"-"`
}

// Success reports whether the command ran and exited with status 0.
func (r CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// ErrorOutput returns the captured stderr, falling back to the start error.
func (r CommandResult) ErrorOutput() string {
	if out := strings.TrimSpace(r.Stderr); out != "" {
		return out
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// AuthResult represents the authentication outcome for a single profile.
type AuthResult struct {
	Profile       string `json:"profile"`
	LoggedIn      bool   `json:"logged_in"`
	LoginError    string `json:"login_error,omitempty"`
	Identity      string `json:"identity,omitempty"`
	IdentityError string `json:"identity_error,omitempty"`
}

// Success reports whether both login and identity check succeeded.
func (r AuthResult) Success() bool {
	return r.LoggedIn && r.IdentityError == ""
}

// CallerIdentity is the STS identity resolved for a profile.
type CallerIdentity struct {
	Profile string `json:"profile"`
	Account string `json:"account"`
	Arn     string `json:"arn"`
	UserID  string `json:"user_id"`
	Error   string `json:"error,omitempty"`
}
