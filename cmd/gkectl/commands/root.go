// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootOpts holds flag values shared by every subcommand.
var rootOpts struct {
	project    string
	configPath string
}

// Root returns the root command for the gkectl CLI.
//
// The root command serves as the entry point and parent for all
// subcommands. Invoking it without a verb is an error.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gkectl",
		Short: "Manage GKE clusters for API-gateway cache testing",
		RunE: func(_ *cobra.Command, _ []string) error {
			return fmt.Errorf("a command is required")
		},
	}

	cmd.PersistentFlags().StringVarP(&rootOpts.project, "project", "p", "",
		"Google Cloud project (default from GOOGLE_CLOUD_PROJECT or gkectl.yaml)")
	cmd.PersistentFlags().StringVarP(&rootOpts.configPath, "config", "c", "",
		"Path to configuration file (default: gkectl.yaml if present)")

	// Cluster lifecycle
	cmd.AddCommand(Create())
	cmd.AddCommand(Delete())

	// Gateway installation
	cmd.AddCommand(Gateway())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
