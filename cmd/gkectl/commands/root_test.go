package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "gkectl", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "gateway")
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "completion")
}

func TestRoot_PersistentFlags(t *testing.T) {
	cmd := Root()

	project := cmd.PersistentFlags().Lookup("project")
	require.NotNil(t, project)
	assert.Equal(t, "p", project.Shorthand)

	config := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, config)
	assert.Equal(t, "c", config.Shorthand)
}

func TestRoot_NoVerbFails(t *testing.T) {
	cmd := Root()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a command is required")
}

func TestRoot_UnknownVerbFails(t *testing.T) {
	cmd := Root()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"frobnicate"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRoot_HelpSucceeds(t *testing.T) {
	cmd := Root()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"-h"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
}
