package commands

import (
	"github.com/spf13/cobra"

	"github.com/day0ops/gkectl/cmd/gkectl/handlers"
	"github.com/day0ops/gkectl/internal/config"
)

// Create returns the create command.
//
// The create command provisions a single GKE cluster named {owner}-{name}
// with a fixed-size node pool and network policy enforcement enabled.
// Defaults the caller does not override are resolved from the provider's
// server-side configuration for the region.
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a GKE cluster",
		Long: `Create provisions a GKE cluster for gateway cache testing.

The cluster name is the deterministic concatenation {owner}-{name}; the
same two flags identify the cluster on delete. Omitted optional flags
take documented defaults, and the Kubernetes version and node image type
fall back to the provider's stable release channel defaults for the
resolved region.

The node pool is fixed size: the requested node count is applied as the
initial, minimum, and maximum count. Network policy enforcement is
always enabled.

Examples:
  # Regional cluster with defaults
  gkectl create -o kasunt -n demo

  # Larger zonal cluster with an explicit machine type
  gkectl create -o kasunt -n demo -a 3 -m e2-standard-8 -z australia-southeast1-b`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), rootOpts.configPath, rootOpts.project, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Owner, "owner", "o", "", "Owner identity used in the cluster name and labels (required)")
	cmd.Flags().StringVarP(&opts.Suffix, "name", "n", "", "Cluster name suffix appended to the owner (required)")
	cmd.Flags().StringVarP(&opts.Region, "region", "r", "", `Cluster region (default "`+config.DefaultRegion+`")`)
	cmd.Flags().StringVarP(&opts.Zone, "zone", "z", "", "Availability zone; creates a zonal cluster instead of a regional one")
	cmd.Flags().IntVarP(&opts.NodeCount, "nodes", "a", config.DefaultNodeCount, "Number of nodes in the fixed-size node pool")
	cmd.Flags().StringVarP(&opts.MachineType, "machine-type", "m", config.DefaultMachineType, "Machine type for cluster nodes")
	cmd.Flags().StringVarP(&opts.KubernetesVersion, "kubernetes-version", "v", "", "Kubernetes version (default: stable channel default for the region)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
