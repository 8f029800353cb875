package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/day0ops/gkectl/internal/config"
)

func TestCreate(t *testing.T) {
	cmd := Create()

	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCreate_Flags(t *testing.T) {
	cmd := Create()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"owner", "o", ""},
		{"name", "n", ""},
		{"region", "r", ""},
		{"zone", "z", ""},
		{"nodes", "a", "1"},
		{"machine-type", "m", config.DefaultMachineType},
		{"kubernetes-version", "v", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "%s flag should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestCreate_RequiredFlags(t *testing.T) {
	for _, name := range []string{"owner", "name"} {
		flag := Create().Flags().Lookup(name)
		require.NotNil(t, flag)
		assert.Contains(t, flag.Annotations, cobra.BashCompOneRequiredFlag,
			"%s flag should be required", name)
	}
}

// Missing required flags must fail during parsing, before the handler
// (and therefore any provider call) runs.
func TestCreate_MissingRequiredFlagsFail(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing owner and name", []string{"create"}, "required flag"},
		{"missing name", []string{"create", "-o", "kasunt"}, `"name" not set`},
		{"missing owner", []string{"create", "-n", "demo"}, `"owner" not set`},
		{"flag without value", []string{"create", "-o", "kasunt", "-n"}, "needs an argument"},
		{"unknown flag", []string{"create", "-o", "kasunt", "-n", "demo", "-x", "1"}, "unknown shorthand flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Root()
			out := &bytes.Buffer{}
			root.SetOut(out)
			root.SetErr(out)
			root.SetArgs(tt.args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
