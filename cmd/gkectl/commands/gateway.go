package commands

import (
	"github.com/spf13/cobra"

	"github.com/day0ops/gkectl/cmd/gkectl/handlers"
)

// Gateway returns the gateway command group.
//
// These commands automate the manual post-provisioning steps: installing
// the Gloo Edge gateway chart and applying its configuration manifests.
// The gateway's runtime behavior (including its response cache) is not
// modeled; Helm and the Kubernetes API are invoked as opaque services.
func Gateway() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Install and configure the API gateway on a cluster",
	}

	cmd.AddCommand(gatewayInstall())
	cmd.AddCommand(gatewayUninstall())
	cmd.AddCommand(gatewayApply())

	return cmd
}

func gatewayInstall() *cobra.Command {
	var opts handlers.GatewayInstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the gateway Helm chart",
		Long: `Install deploys the Gloo Edge gateway chart into the target cluster,
or upgrades an existing release. The command waits for the release to
become ready.

Example:
  gkectl gateway install --kubeconfig ./kubeconfig --chart-version 1.14.2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.GatewayInstall(cmd.Context(), rootOpts.configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.KubeconfigPath, "kubeconfig", "", "Path to the cluster kubeconfig (required)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", `Installation namespace (default "gloo-system")`)
	cmd.Flags().StringVar(&opts.Version, "chart-version", "", "Chart version (default: latest)")
	_ = cmd.MarkFlagRequired("kubeconfig")

	return cmd
}

func gatewayUninstall() *cobra.Command {
	var opts handlers.GatewayUninstallOptions

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall the gateway Helm release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.GatewayUninstall(cmd.Context(), rootOpts.configPath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.KubeconfigPath, "kubeconfig", "", "Path to the cluster kubeconfig (required)")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", `Installation namespace (default "gloo-system")`)
	_ = cmd.MarkFlagRequired("kubeconfig")

	return cmd
}

func gatewayApply() *cobra.Command {
	var kubeconfigPath, filename string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply gateway configuration manifests",
		Long: `Apply creates or updates the namespaced gateway resources (virtual
services, upstreams, caching settings) from a multi-document YAML file.

Example:
  gkectl gateway apply --kubeconfig ./kubeconfig -f resources/cache-test.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.GatewayApply(cmd.Context(), kubeconfigPath, filename)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the cluster kubeconfig (required)")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Path to the manifest file (required)")
	_ = cmd.MarkFlagRequired("kubeconfig")
	_ = cmd.MarkFlagRequired("filename")

	return cmd
}
