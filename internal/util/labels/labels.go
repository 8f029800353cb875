package labels

import "strings"

// Standard label keys attached to every created cluster.
const (
	// KeyOwner identifies who the cluster belongs to.
	KeyOwner = "owner"

	// KeyTeam identifies the owning team for cost attribution.
	KeyTeam = "team"

	// KeyCreatedBy identifies the tool that created the resource.
	KeyCreatedBy = "created-by"
)

// Fixed label values.
const (
	TeamFieldEngineering = "field-engineering"
	CreatedByGkectl      = "gkectl"
)

// Builder accumulates a label set for a cluster and its nodes.
type Builder struct {
	labels map[string]string
}

// NewBuilder creates a builder pre-populated with the fixed label set for
// the given owner.
func NewBuilder(owner string) *Builder {
	return &Builder{
		labels: map[string]string{
			KeyOwner:     Normalize(owner),
			KeyTeam:      TeamFieldEngineering,
			KeyCreatedBy: CreatedByGkectl,
		},
	}
}

// With adds or overrides a single label.
func (b *Builder) With(key, value string) *Builder {
	b.labels[Normalize(key)] = Normalize(value)
	return b
}

// Merge adds all entries of m, overriding existing keys.
func (b *Builder) Merge(m map[string]string) *Builder {
	for k, v := range m {
		b.With(k, v)
	}
	return b
}

// Build returns a copy of the accumulated label set.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.labels))
	for k, v := range b.labels {
		out[k] = v
	}
	return out
}

// Normalize rewrites a value so it satisfies GCP label constraints:
// lowercase letters, digits, underscores and dashes only.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
