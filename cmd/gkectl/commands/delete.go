package commands

import (
	"github.com/spf13/cobra"

	"github.com/day0ops/gkectl/cmd/gkectl/handlers"
	"github.com/day0ops/gkectl/internal/config"
)

// Delete returns the delete command.
//
// Delete reconstructs the canonical {owner}-{name} cluster name from the
// same two flags create uses and issues a single non-interactive delete
// call. Machine type, node count, and version play no part here.
func Delete() *cobra.Command {
	var opts handlers.DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a GKE cluster",
		Long: `Delete removes the cluster named {owner}-{name}.

The deletion runs without a confirmation prompt and blocks until the
provider finishes tearing the cluster down.

Example:
  gkectl delete -o kasunt -n demo

WARNING: This operation is irreversible. All cluster data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Delete(cmd.Context(), rootOpts.configPath, rootOpts.project, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Owner, "owner", "o", "", "Owner identity used in the cluster name (required)")
	cmd.Flags().StringVarP(&opts.Suffix, "name", "n", "", "Cluster name suffix appended to the owner (required)")
	cmd.Flags().StringVarP(&opts.Region, "region", "r", "", `Cluster region (default "`+config.DefaultRegion+`")`)
	cmd.Flags().StringVarP(&opts.Zone, "zone", "z", "", "Availability zone of the cluster, for zonal clusters")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
