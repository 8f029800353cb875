package config

// Cluster defaults applied when the caller does not supply explicit values.
const (
	// DefaultRegion is used when neither flag nor config file set a region.
	DefaultRegion = "asia-northeast1"

	// DefaultMachineType is the node machine type for created clusters.
	DefaultMachineType = "e2-standard-4"

	// DefaultNodeCount is the fixed node pool size for created clusters.
	DefaultNodeCount = 1
)

// Gateway chart defaults. The gateway commands install Gloo Edge from the
// public Solo.io chart repository.
const (
	DefaultGatewayNamespace = "gloo-system"
	DefaultGatewayRepoURL   = "https://storage.googleapis.com/solo-public-helm"
	DefaultGatewayChart     = "gloo"
	DefaultGatewayRelease   = "gloo"
)

// EnvProject is the environment variable consulted for the project when no
// flag or config file value is present.
const EnvProject = "GOOGLE_CLOUD_PROJECT"

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given. Its absence is not an error.
const DefaultConfigFile = "gkectl.yaml"

// DefaultScopes is the fixed, ordered authorization scope set attached to
// every created cluster's nodes. It is the provider's standard node scope
// set; callers can override it via the config file but not per invocation.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/devstorage.read_only",
	"https://www.googleapis.com/auth/logging.write",
	"https://www.googleapis.com/auth/monitoring",
	"https://www.googleapis.com/auth/service.management.readonly",
	"https://www.googleapis.com/auth/servicecontrol",
	"https://www.googleapis.com/auth/trace.append",
}
