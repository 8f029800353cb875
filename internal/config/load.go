package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration for one invocation.
//
// Built-in defaults fill whatever the config file (path if given,
// otherwise gkectl.yaml when present) leaves unset. The project falls
// back to GOOGLE_CLOUD_PROJECT when the file has none, and the
// projectOverride from the --project flag wins over both. A missing
// explicit path is an error; a missing default file is not.
func Load(path, projectOverride string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.Project == "" {
		cfg.Project = os.Getenv(EnvProject)
	}
	if projectOverride != "" {
		cfg.Project = projectOverride
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = append([]string(nil), DefaultScopes...)
	}
	if cfg.Gateway.Namespace == "" {
		cfg.Gateway.Namespace = DefaultGatewayNamespace
	}
	if cfg.Gateway.RepoURL == "" {
		cfg.Gateway.RepoURL = DefaultGatewayRepoURL
	}
	if cfg.Gateway.Chart == "" {
		cfg.Gateway.Chart = DefaultGatewayChart
	}
	if cfg.Gateway.ReleaseName == "" {
		cfg.Gateway.ReleaseName = DefaultGatewayRelease
	}
}
