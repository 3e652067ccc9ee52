package types

import "errors"

var (
	ErrMalformedAccountIDs = errors.New("account IDs must be a list of quoted strings, e.g. ['111111111111', '222222222222']")
	ErrMissingPrepareInput = errors.New("missing required prepare input")
	ErrNoSSOProfiles       = errors.New("no managed SSO profiles found in AWS configuration")
)
