// Package gateway installs and configures the API-gateway product on a
// cluster.
//
// Helm and the Kubernetes API are invoked as opaque services: the package
// installs the gateway chart and applies namespaced configuration
// manifests, but does not model the gateway's behavior (notably its
// response cache) or reconcile resources after applying them.
package gateway
