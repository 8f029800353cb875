package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder(t *testing.T) {
	got := NewBuilder("kasunt").Build()

	require.Len(t, got, 3)
	assert.Equal(t, "kasunt", got[KeyOwner])
	assert.Equal(t, TeamFieldEngineering, got[KeyTeam])
	assert.Equal(t, CreatedByGkectl, got[KeyCreatedBy])
}

func TestBuilder_With(t *testing.T) {
	got := NewBuilder("kasunt").With("env", "demo").Build()

	assert.Equal(t, "demo", got["env"])
	assert.Equal(t, "kasunt", got[KeyOwner])
}

func TestBuilder_Merge(t *testing.T) {
	got := NewBuilder("kasunt").
		Merge(map[string]string{"env": "demo", KeyTeam: "platform"}).
		Build()

	assert.Equal(t, "demo", got["env"])
	assert.Equal(t, "platform", got[KeyTeam], "merged labels override defaults")
}

func TestBuilder_BuildReturnsCopy(t *testing.T) {
	b := NewBuilder("kasunt")
	first := b.Build()
	first["extra"] = "mutated"

	second := b.Build()
	assert.NotContains(t, second, "extra")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"kasunt", "kasunt"},
		{"Kasunt", "kasunt"},
		{"kasunt t", "kasunt-t"},
		{"owner@example.com", "owner-example-com"},
		{"a_b-c9", "a_b-c9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}
