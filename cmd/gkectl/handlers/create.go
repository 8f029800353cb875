package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/day0ops/gkectl/internal/cluster"
	"github.com/day0ops/gkectl/internal/gke"
	"github.com/day0ops/gkectl/internal/util/labels"
)

// CreateOptions carries the create command's flag values.
type CreateOptions struct {
	Owner             string
	Suffix            string
	Region            string
	Zone              string
	MachineType       string
	NodeCount         int
	KubernetesVersion string
}

// Create handles the create command.
//
// It resolves the request from flags, configuration, and built-in
// defaults, verifies the project precondition, then delegates to the
// lifecycle executor: enable prerequisite services, query any unset
// server-side defaults, and issue the create call. The provider call
// blocks until the cluster operation finishes.
func Create(ctx context.Context, configPath, project string, opts CreateOptions) error {
	cfg, err := loadConfig(configPath, project)
	if err != nil {
		return err
	}
	if err := cfg.RequireProject(); err != nil {
		return err
	}

	req := &cluster.Request{
		Operation:         cluster.OperationCreate,
		Owner:             opts.Owner,
		Suffix:            opts.Suffix,
		Region:            firstNonEmpty(opts.Region, cfg.Region),
		Zone:              opts.Zone,
		MachineType:       opts.MachineType,
		NodeCount:         opts.NodeCount,
		KubernetesVersion: opts.KubernetesVersion,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	client, err := newGKEClient(ctx, cfg.Project)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}
	defer func() { _ = client.Close() }()

	clusterLabels := labels.NewBuilder(opts.Owner).Merge(cfg.Labels).Build()

	log.Printf("Creating cluster %s in %s (project %s)", req.Name(), req.Location(), cfg.Project)
	if err := gke.Create(ctx, client, req, cfg.Scopes, clusterLabels); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	log.Printf("Cluster %s created successfully", req.Name())
	return nil
}
