package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway(t *testing.T) {
	cmd := Gateway()

	require.NotNil(t, cmd)
	assert.Equal(t, "gateway", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"install", "uninstall", "apply"}, names)
}

func TestGatewayInstall_Flags(t *testing.T) {
	var install *cobra.Command
	for _, sub := range Gateway().Commands() {
		if sub.Name() == "install" {
			install = sub
		}
	}
	require.NotNil(t, install)

	kubeconfig := install.Flags().Lookup("kubeconfig")
	require.NotNil(t, kubeconfig)
	assert.Contains(t, kubeconfig.Annotations, cobra.BashCompOneRequiredFlag)

	require.NotNil(t, install.Flags().Lookup("namespace"))
	require.NotNil(t, install.Flags().Lookup("chart-version"))
}

func TestGatewayApply_Flags(t *testing.T) {
	var apply *cobra.Command
	for _, sub := range Gateway().Commands() {
		if sub.Name() == "apply" {
			apply = sub
		}
	}
	require.NotNil(t, apply)

	filename := apply.Flags().Lookup("filename")
	require.NotNil(t, filename)
	assert.Equal(t, "f", filename.Shorthand)
	assert.Contains(t, filename.Annotations, cobra.BashCompOneRequiredFlag)
}
