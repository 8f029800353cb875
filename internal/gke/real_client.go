package gke

import (
	"context"
	"fmt"
	"time"

	container "cloud.google.com/go/container/apiv1"
	"cloud.google.com/go/container/apiv1/containerpb"
	serviceusage "google.golang.org/api/serviceusage/v1"

	"github.com/day0ops/gkectl/internal/util/naming"
)

const defaultPollInterval = 15 * time.Second

// RealClient implements Client using the container and serviceusage APIs.
// Credentials come from application default credentials in the ambient
// environment.
type RealClient struct {
	project      string
	clusters     *container.ClusterManagerClient
	services     *serviceusage.Service
	pollInterval time.Duration
}

// NewRealClient creates a new RealClient bound to a project.
func NewRealClient(ctx context.Context, project string) (*RealClient, error) {
	clusters, err := container.NewClusterManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cluster manager client: %w", err)
	}

	services, err := serviceusage.NewService(ctx)
	if err != nil {
		_ = clusters.Close()
		return nil, fmt.Errorf("failed to create service usage client: %w", err)
	}

	return &RealClient{
		project:      project,
		clusters:     clusters,
		services:     services,
		pollInterval: defaultPollInterval,
	}, nil
}

// CreateCluster issues the create call and waits for the resulting
// operation to finish.
func (c *RealClient) CreateCluster(ctx context.Context, location string, cluster *containerpb.Cluster) error {
	op, err := c.clusters.CreateCluster(ctx, &containerpb.CreateClusterRequest{
		Parent:  naming.Location(c.project, location),
		Cluster: cluster,
	})
	if err != nil {
		return fmt.Errorf("failed to create cluster %s: %w", cluster.GetName(), err)
	}
	return c.waitForOperation(ctx, location, op)
}

// DeleteCluster issues the delete call and waits for the resulting
// operation to finish.
func (c *RealClient) DeleteCluster(ctx context.Context, location, name string) error {
	op, err := c.clusters.DeleteCluster(ctx, &containerpb.DeleteClusterRequest{
		Name: naming.Cluster(c.project, location, name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cluster %s: %w", name, err)
	}
	return c.waitForOperation(ctx, location, op)
}

// ServerConfig returns the server-side configuration for a location.
func (c *RealClient) ServerConfig(ctx context.Context, location string) (*containerpb.ServerConfig, error) {
	cfg, err := c.clusters.GetServerConfig(ctx, &containerpb.GetServerConfigRequest{
		Name: naming.Location(c.project, location),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get server config for %s: %w", location, err)
	}
	return cfg, nil
}

// EnableService enables a service on the client's project and blocks
// until the enablement operation completes. Enablement is asynchronous;
// returning before the operation is done would let a create call race an
// API that is not yet usable.
func (c *RealClient) EnableService(ctx context.Context, service string) error {
	op, err := c.services.Services.
		Enable(naming.Service(c.project, service), &serviceusage.EnableServiceRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to enable service %s: %w", service, err)
	}

	for !op.Done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}

		op, err = c.services.Operations.Get(op.Name).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to poll enablement of %s: %w", service, err)
		}
	}

	if op.Error != nil {
		return fmt.Errorf("enabling service %s failed: %s", service, op.Error.Message)
	}
	return nil
}

// Close releases the underlying API clients.
func (c *RealClient) Close() error {
	return c.clusters.Close()
}

// waitForOperation polls a cluster operation until it is done. The
// provider keeps running an interrupted operation; cancelling the context
// only stops the local wait.
func (c *RealClient) waitForOperation(ctx context.Context, location string, op *containerpb.Operation) error {
	for {
		if op.GetStatus() == containerpb.Operation_DONE {
			if msg := operationError(op); msg != "" {
				return fmt.Errorf("operation %s failed: %s", op.GetName(), msg)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}

		next, err := c.clusters.GetOperation(ctx, &containerpb.GetOperationRequest{
			Name: naming.Operation(c.project, location, op.GetName()),
		})
		if err != nil {
			return fmt.Errorf("failed to poll operation %s: %w", op.GetName(), err)
		}
		op = next
	}
}

func operationError(op *containerpb.Operation) string {
	if e := op.GetError(); e != nil {
		return e.GetMessage()
	}
	return op.GetStatusMessage() //nolint:staticcheck // populated by older API servers
}
