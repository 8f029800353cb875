package config

import (
	"errors"
	"fmt"
)

// ErrNoProject is returned when no Google Cloud project is configured via
// flag, environment, or config file.
var ErrNoProject = errors.New("no Google Cloud project configured")

// Config holds the resolved tool configuration.
type Config struct {
	// Project is the Google Cloud project all provider calls target.
	Project string `yaml:"project"`

	// Region is the default cluster region when no --region flag is given.
	Region string `yaml:"region"`

	// Labels are merged into the fixed label set on created clusters.
	Labels map[string]string `yaml:"labels"`

	// Scopes overrides the default node authorization scope set.
	Scopes []string `yaml:"scopes"`

	// Gateway configures the gateway chart installation.
	Gateway GatewayConfig `yaml:"gateway"`
}

// GatewayConfig holds the Helm coordinates of the gateway product.
type GatewayConfig struct {
	Namespace   string `yaml:"namespace"`
	RepoURL     string `yaml:"repoURL"`
	Chart       string `yaml:"chart"`
	Version     string `yaml:"version"`
	ReleaseName string `yaml:"releaseName"`
}

// RequireProject verifies the project precondition. Cluster lifecycle
// commands call this before constructing any provider client.
func (c *Config) RequireProject() error {
	if c.Project == "" {
		return fmt.Errorf("%w: set --project, %s, or project in %s",
			ErrNoProject, EnvProject, DefaultConfigFile)
	}
	return nil
}

// Validate checks the configuration for errors that would only surface as
// confusing provider failures later.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region must not be empty")
	}
	for _, s := range c.Scopes {
		if s == "" {
			return fmt.Errorf("scopes must not contain empty entries")
		}
	}
	if c.Gateway.RepoURL == "" {
		return fmt.Errorf("gateway repoURL must not be empty")
	}
	if c.Gateway.Chart == "" {
		return fmt.Errorf("gateway chart must not be empty")
	}
	if c.Gateway.Namespace == "" {
		return fmt.Errorf("gateway namespace must not be empty")
	}
	if c.Gateway.ReleaseName == "" {
		return fmt.Errorf("gateway releaseName must not be empty")
	}
	return nil
}
