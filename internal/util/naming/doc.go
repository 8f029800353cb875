// Package naming provides consistent naming functions for GKE resources.
//
// The canonical cluster name follows the pattern {owner}-{suffix} and is
// the sole identity shared between create and delete. Resource path
// helpers build the fully-qualified names the container and serviceusage
// APIs expect (projects/{project}/locations/{location}/... and friends).
package naming
