package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/day0ops/gkectl/internal/cluster"
	"github.com/day0ops/gkectl/internal/gke"
)

// DeleteOptions carries the delete command's flag values. Delete only
// needs the identity fields: the canonical name is rebuilt from owner and
// suffix, and the location addresses the right cluster.
type DeleteOptions struct {
	Owner  string
	Suffix string
	Region string
	Zone   string
}

// Delete handles the delete command.
//
// It issues exactly one delete call, non-interactively, and blocks until
// the provider operation finishes. A missing cluster surfaces as the
// provider's own error.
func Delete(ctx context.Context, configPath, project string, opts DeleteOptions) error {
	cfg, err := loadConfig(configPath, project)
	if err != nil {
		return err
	}
	if err := cfg.RequireProject(); err != nil {
		return err
	}

	req := &cluster.Request{
		Operation: cluster.OperationDelete,
		Owner:     opts.Owner,
		Suffix:    opts.Suffix,
		Region:    firstNonEmpty(opts.Region, cfg.Region),
		Zone:      opts.Zone,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	client, err := newGKEClient(ctx, cfg.Project)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}
	defer func() { _ = client.Close() }()

	log.Printf("Deleting cluster %s in %s (project %s)", req.Name(), req.Location(), cfg.Project)
	if err := gke.Delete(ctx, client, req); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	log.Printf("Cluster %s deleted successfully", req.Name())
	return nil
}
