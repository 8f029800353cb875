package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/repo"
	"helm.sh/helm/v3/pkg/storage/driver"
)

const helmTimeout = 10 * time.Minute

// HelmClient installs the gateway chart into a cluster using in-memory
// kubeconfig bytes.
type HelmClient struct {
	namespace    string
	actionConfig *action.Configuration
}

// NewHelmClient creates a Helm client from kubeconfig bytes, scoped to a
// namespace.
func NewHelmClient(kubeconfig []byte, namespace string) (*HelmClient, error) {
	actionConfig := new(action.Configuration)
	restGetter := newRESTClientGetter(kubeconfig, namespace)

	// No-op logger; Helm's debug output is noise here.
	if err := actionConfig.Init(restGetter, namespace, "secret", func(string, ...interface{}) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize helm action config: %w", err)
	}

	return &HelmClient{
		namespace:    namespace,
		actionConfig: actionConfig,
	}, nil
}

// InstallOrUpgrade installs the chart or upgrades an existing release.
func (c *HelmClient) InstallOrUpgrade(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	exists, err := c.ReleaseExists(releaseName)
	if err != nil {
		return err
	}
	if exists {
		return c.upgrade(ctx, releaseName, repoURL, chartName, version, values)
	}
	return c.install(ctx, releaseName, repoURL, chartName, version, values)
}

func (c *HelmClient) install(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	installClient := action.NewInstall(c.actionConfig)
	installClient.ReleaseName = releaseName
	installClient.Namespace = c.namespace
	installClient.CreateNamespace = true
	installClient.Version = version
	installClient.Wait = true
	installClient.Timeout = helmTimeout

	chrt, err := c.loadChart(repoURL, chartName, version)
	if err != nil {
		return err
	}

	if _, err := installClient.RunWithContext(ctx, chrt, values); err != nil {
		return fmt.Errorf("helm install of %s failed: %w", chartName, err)
	}
	return nil
}

func (c *HelmClient) upgrade(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	upgradeClient := action.NewUpgrade(c.actionConfig)
	upgradeClient.Namespace = c.namespace
	upgradeClient.Version = version
	upgradeClient.Wait = true
	upgradeClient.Timeout = helmTimeout
	upgradeClient.ReuseValues = false

	chrt, err := c.loadChart(repoURL, chartName, version)
	if err != nil {
		return err
	}

	if _, err := upgradeClient.RunWithContext(ctx, releaseName, chrt, values); err != nil {
		return fmt.Errorf("helm upgrade of %s failed: %w", chartName, err)
	}
	return nil
}

func (c *HelmClient) loadChart(repoURL, chartName, version string) (*chart.Chart, error) {
	settings := cli.New()

	chartPath, err := repo.FindChartInRepoURL(
		repoURL,
		chartName,
		getter.All(settings),
		repo.WithChartVersion(version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find chart %s in repo %s: %w", chartName, repoURL, err)
	}

	defer func() {
		_ = os.Remove(chartPath)
	}()

	chrt, err := loader.Load(chartPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}
	return chrt, nil
}

// Uninstall removes the release and waits for its resources to go away.
func (c *HelmClient) Uninstall(releaseName string) error {
	uninstallClient := action.NewUninstall(c.actionConfig)
	uninstallClient.Wait = true
	uninstallClient.Timeout = helmTimeout

	if _, err := uninstallClient.Run(releaseName); err != nil {
		return fmt.Errorf("helm uninstall of %s failed: %w", releaseName, err)
	}
	return nil
}

// ReleaseExists checks whether a release is already installed.
func (c *HelmClient) ReleaseExists(releaseName string) (bool, error) {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1

	_, err := histClient.Run(releaseName)
	if err != nil {
		if errors.Is(err, driver.ErrReleaseNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query release history: %w", err)
	}
	return true, nil
}
