package naming

import "fmt"

// Naming functions for GKE resources.
// The container API addresses everything through fully-qualified resource
// paths, so all path construction lives here.

// ClusterName returns the canonical cluster name for an owner and suffix.
// Create and delete both derive the target cluster from this name, so the
// concatenation must stay deterministic.
func ClusterName(owner, suffix string) string {
	return fmt.Sprintf("%s-%s", owner, suffix)
}

// Location returns the parent path for location-scoped calls.
// The location is a region for regional clusters or a zone for zonal ones.
func Location(project, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", project, location)
}

// Cluster returns the fully-qualified cluster resource path.
func Cluster(project, location, name string) string {
	return fmt.Sprintf("projects/%s/locations/%s/clusters/%s", project, location, name)
}

// Operation returns the fully-qualified operation resource path.
func Operation(project, location, operation string) string {
	return fmt.Sprintf("projects/%s/locations/%s/operations/%s", project, location, operation)
}

// Service returns the serviceusage resource path for a service.
func Service(project, service string) string {
	return fmt.Sprintf("projects/%s/services/%s", project, service)
}
