// Package gke provides a wrapper around the Google Kubernetes Engine API.
package gke

import (
	"context"

	"cloud.google.com/go/container/apiv1/containerpb"
)

// ClusterManager defines the interface for cluster lifecycle mutations.
// It abstracts the underlying provider API. Both calls block until the
// provider operation finishes.
type ClusterManager interface {
	// CreateCluster creates a cluster in the given location (region or
	// zone). Re-creating an existing name fails at the provider.
	CreateCluster(ctx context.Context, location string, cluster *containerpb.Cluster) error

	// DeleteCluster deletes the named cluster. It runs non-interactively;
	// a missing cluster is a provider error surfaced to the caller.
	DeleteCluster(ctx context.Context, location, name string) error
}

// DefaultsSource defines the interface for querying server-side defaults.
type DefaultsSource interface {
	// ServerConfig returns the provider configuration for a location,
	// including the default image type and release channel versions.
	ServerConfig(ctx context.Context, location string) (*containerpb.ServerConfig, error)
}

// ServiceEnabler defines the interface for enabling provider subservices.
type ServiceEnabler interface {
	// EnableService enables a service on the project. Enabling an
	// already-enabled service succeeds.
	EnableService(ctx context.Context, service string) error
}

// Client combines all provider operations the tool needs.
type Client interface {
	ClusterManager
	DefaultsSource
	ServiceEnabler

	Close() error
}
