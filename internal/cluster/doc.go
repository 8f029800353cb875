// Package cluster defines the resolved lifecycle request model.
//
// A Request is built once per invocation from CLI flags plus resolved
// defaults, validated, handed to the executor, and never persisted.
package cluster
