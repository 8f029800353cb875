package gke

import (
	"context"
	"fmt"

	"cloud.google.com/go/container/apiv1/containerpb"

	"github.com/day0ops/gkectl/internal/cluster"
)

// Provider subservices that must be enabled before a cluster can be
// created: the cluster management API itself and managed DNS. Enabling is
// idempotent.
var RequiredServices = []string{
	"container.googleapis.com",
	"dns.googleapis.com",
}

// defaultNodePoolName is the provider's conventional name for the initial
// node pool.
const defaultNodePoolName = "default-pool"

// Create performs the create half of the lifecycle: enable prerequisite
// services, resolve any unset defaults, then issue a single create call.
// Any failure aborts without rollback; the provider's cluster resource is
// a single atomic remote object.
func Create(ctx context.Context, client Client, req *cluster.Request, scopes []string, labels map[string]string) error {
	for _, svc := range RequiredServices {
		if err := client.EnableService(ctx, svc); err != nil {
			return fmt.Errorf("failed to enable prerequisite service: %w", err)
		}
	}

	if err := ResolveDefaults(ctx, client, req); err != nil {
		return err
	}

	return client.CreateCluster(ctx, req.Location(), BuildCluster(req, scopes, labels))
}

// Delete performs the delete half of the lifecycle: a single delete call
// addressed by the canonical name and location, nothing else.
func Delete(ctx context.Context, client ClusterManager, req *cluster.Request) error {
	return client.DeleteCluster(ctx, req.Location(), req.Name())
}

// BuildCluster translates a resolved request into the provider cluster
// spec. The node pool is fixed size: the requested count is applied as
// initial, min, and max. Network policy enforcement is always on.
func BuildCluster(req *cluster.Request, scopes []string, labels map[string]string) *containerpb.Cluster {
	nodes := int32(req.NodeCount) // #nosec G115 -- Validate bounds this to 1..MaxNodeCount

	return &containerpb.Cluster{
		Name:                  req.Name(),
		InitialClusterVersion: req.KubernetesVersion,
		ResourceLabels:        labels,
		NetworkPolicy: &containerpb.NetworkPolicy{
			Provider: containerpb.NetworkPolicy_CALICO,
			Enabled:  true,
		},
		NodePools: []*containerpb.NodePool{
			{
				Name:             defaultNodePoolName,
				InitialNodeCount: nodes,
				Config: &containerpb.NodeConfig{
					MachineType: req.MachineType,
					ImageType:   req.ImageType,
					OauthScopes: scopes,
					Labels:      labels,
				},
				Autoscaling: &containerpb.NodePoolAutoscaling{
					Enabled:      true,
					MinNodeCount: nodes,
					MaxNodeCount: nodes,
				},
			},
		},
	}
}
