package cluster

import (
	"fmt"

	"github.com/day0ops/gkectl/internal/util/naming"
)

// Operation is the lifecycle verb a request performs.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationDelete Operation = "delete"
)

// MaxNodeCount bounds the fixed pool size. The provider caps node pools
// well below this; anything larger is a typo, not a test cluster.
const MaxNodeCount = 1000

// Request is the resolved, validated parameter set for one lifecycle
// operation. Owner and Suffix are mandatory for both verbs because the
// canonical name is reconstructed from them; the remaining fields are
// create-only.
type Request struct {
	Operation Operation

	Owner  string
	Suffix string

	Region string
	// Zone, when set, switches the provider call from regional to zonal.
	Zone string

	MachineType       string
	NodeCount         int
	KubernetesVersion string
	ImageType         string
}

// Name returns the canonical cluster name. It is the sole identity shared
// between create and delete.
func (r *Request) Name() string {
	return naming.ClusterName(r.Owner, r.Suffix)
}

// Location returns the provider location: the zone for zonal clusters,
// otherwise the region.
func (r *Request) Location() string {
	if r.Zone != "" {
		return r.Zone
	}
	return r.Region
}

// Zonal reports whether the request addresses a zonal cluster.
func (r *Request) Zonal() bool {
	return r.Zone != ""
}

// Validate checks the request before any provider call is made.
func (r *Request) Validate() error {
	if r.Owner == "" {
		return fmt.Errorf("owner is required")
	}
	if r.Suffix == "" {
		return fmt.Errorf("cluster name suffix is required")
	}
	if r.Region == "" && r.Zone == "" {
		return fmt.Errorf("a region or zone is required")
	}
	if r.Operation == OperationCreate {
		if r.NodeCount < 1 {
			return fmt.Errorf("node count must be positive, got %d", r.NodeCount)
		}
		if r.NodeCount > MaxNodeCount {
			return fmt.Errorf("node count must be at most %d, got %d", MaxNodeCount, r.NodeCount)
		}
		if r.MachineType == "" {
			return fmt.Errorf("machine type is required")
		}
	}
	return nil
}
