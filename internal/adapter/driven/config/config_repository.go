package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega os valores padrão do prepare de um arquivo TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	filePath, err := homedir.Expand(filePath)
	if err != nil {
		return nil, fmt.Errorf("error expanding config file path: %w", err)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", filepath.Ext(filePath))
	}

	if err := normalize(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// normalize trims scalar values and expands "~" in the two managed paths.
func normalize(c *types.Config) error {
	c.Role = strings.TrimSpace(c.Role)
	c.URL = strings.TrimSpace(c.URL)
	c.SSORegion = strings.TrimSpace(c.SSORegion)
	c.Region = strings.TrimSpace(c.Region)

	for _, p := range []*string{&c.AWSConfig, &c.SteampipeConfig} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("error expanding path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}
