package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Role            string   `json:"role" yaml:"role" toml:"role"`
	IDs             []string `json:"ids" yaml:"ids" toml:"ids"`
	URL             string   `json:"url" yaml:"url" toml:"url"`
	SSORegion       string   `json:"sso_region" yaml:"sso_region" toml:"sso_region"`
	Region          string   `json:"region" yaml:"region" toml:"region"`
	AWSConfig       string   `json:"aws_config" yaml:"aws_config" toml:"aws_config"`
	SteampipeConfig string   `json:"steampipe_config" yaml:"steampipe_config" toml:"steampipe_config"`
}
