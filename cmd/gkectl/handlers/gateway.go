package handlers

import (
	"context"
	"fmt"
	"log"
	"time"
)

// gatewayDeployments must all be ready before the gateway can serve
// traffic: the control plane and the proxy in front of it.
var gatewayDeployments = []string{"gloo", "gateway-proxy"}

const gatewayReadyTimeout = 5 * time.Minute

// GatewayInstallOptions carries the gateway install command's flag values.
type GatewayInstallOptions struct {
	KubeconfigPath string
	Namespace      string
	Version        string
}

// GatewayInstall handles the gateway install command.
//
// It installs (or upgrades) the gateway Helm chart into the target
// cluster. Helm is an opaque service here: chart contents and the
// gateway's runtime behavior are not modeled.
func GatewayInstall(ctx context.Context, configPath string, opts GatewayInstallOptions) error {
	cfg, err := loadConfig(configPath, "")
	if err != nil {
		return err
	}
	gw := cfg.Gateway

	kubeconfig, err := readFile(opts.KubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to read kubeconfig: %w", err)
	}

	namespace := firstNonEmpty(opts.Namespace, gw.Namespace)
	version := firstNonEmpty(opts.Version, gw.Version)

	helm, err := newHelmClient(kubeconfig, namespace)
	if err != nil {
		return fmt.Errorf("failed to create helm client: %w", err)
	}

	log.Printf("Installing gateway chart %s (release %s) into namespace %s", gw.Chart, gw.ReleaseName, namespace)
	if err := helm.InstallOrUpgrade(ctx, gw.ReleaseName, gw.RepoURL, gw.Chart, version, nil); err != nil {
		return fmt.Errorf("gateway install failed: %w", err)
	}

	waiter, err := newDeploymentWaiter(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	for _, name := range gatewayDeployments {
		log.Printf("Waiting for deployment %s/%s to become ready", namespace, name)
		if err := waiter.WaitForDeployment(ctx, namespace, name, gatewayReadyTimeout); err != nil {
			return err
		}
	}

	log.Printf("Gateway release %s installed", gw.ReleaseName)
	return nil
}

// GatewayUninstallOptions carries the gateway uninstall command's flag values.
type GatewayUninstallOptions struct {
	KubeconfigPath string
	Namespace      string
}

// GatewayUninstall handles the gateway uninstall command.
func GatewayUninstall(_ context.Context, configPath string, opts GatewayUninstallOptions) error {
	cfg, err := loadConfig(configPath, "")
	if err != nil {
		return err
	}
	gw := cfg.Gateway

	kubeconfig, err := readFile(opts.KubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to read kubeconfig: %w", err)
	}

	namespace := firstNonEmpty(opts.Namespace, gw.Namespace)

	helm, err := newHelmClient(kubeconfig, namespace)
	if err != nil {
		return fmt.Errorf("failed to create helm client: %w", err)
	}

	log.Printf("Uninstalling gateway release %s from namespace %s", gw.ReleaseName, namespace)
	if err := helm.Uninstall(gw.ReleaseName); err != nil {
		return fmt.Errorf("gateway uninstall failed: %w", err)
	}

	log.Printf("Gateway release %s uninstalled", gw.ReleaseName)
	return nil
}

// GatewayApply handles the gateway apply command.
//
// It applies a multi-document YAML file of namespaced gateway
// configuration resources (virtual services, upstreams, cache settings)
// with create-or-update semantics. No reconciliation happens afterwards.
func GatewayApply(ctx context.Context, kubeconfigPath, filename string) error {
	kubeconfig, err := readFile(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to read kubeconfig: %w", err)
	}

	manifest, err := readFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	client, err := newK8sClient(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	log.Printf("Applying gateway manifests from %s", filename)
	if err := client.Apply(ctx, manifest); err != nil {
		return fmt.Errorf("gateway apply failed: %w", err)
	}

	log.Printf("Gateway manifests applied")
	return nil
}
