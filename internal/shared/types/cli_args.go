package types

// Paths holds the two files managed by the tool.
type Paths struct {
	AWSConfig       string
	SteampipeConfig string
}

// PrepareArgs represents the inputs of the prepare command after flags and
// the optional config file have been merged.
type PrepareArgs struct {
	RoleName   string   `validate:"required"`
	AccountIDs []string `validate:"required"`
	StartURL   string   `validate:"required"`
	SSORegion  string   `validate:"required"`
	Region     string
}
