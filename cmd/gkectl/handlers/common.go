// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"os"
	"time"

	"github.com/day0ops/gkectl/internal/config"
	"github.com/day0ops/gkectl/internal/gateway"
	"github.com/day0ops/gkectl/internal/gke"
)

// helmInstaller is the slice of gateway.HelmClient the handlers use.
type helmInstaller interface {
	InstallOrUpgrade(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error
	Uninstall(releaseName string) error
}

// manifestApplier is the slice of gateway.K8sClient the handlers use.
type manifestApplier interface {
	Apply(ctx context.Context, manifest []byte) error
}

// deploymentWaiter is the slice of gateway.K8sClient used to verify the
// gateway is running after installation.
type deploymentWaiter interface {
	WaitForDeployment(ctx context.Context, namespace, name string, timeout time.Duration) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newGKEClient creates a provider client for a project.
	newGKEClient = func(ctx context.Context, project string) (gke.Client, error) {
		return gke.NewRealClient(ctx, project)
	}

	// newHelmClient creates a Helm client for gateway installation.
	newHelmClient = func(kubeconfig []byte, namespace string) (helmInstaller, error) {
		return gateway.NewHelmClient(kubeconfig, namespace)
	}

	// newK8sClient creates a Kubernetes client for manifest application.
	newK8sClient = func(kubeconfig []byte) (manifestApplier, error) {
		return gateway.NewK8sClient(kubeconfig)
	}

	// newDeploymentWaiter creates a Kubernetes client for readiness checks.
	newDeploymentWaiter = func(kubeconfig []byte) (deploymentWaiter, error) {
		return gateway.NewK8sClient(kubeconfig)
	}

	// loadConfig loads the tool configuration.
	loadConfig = config.Load

	// readFile reads a file from disk (for testing injection).
	readFile = os.ReadFile
)

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
