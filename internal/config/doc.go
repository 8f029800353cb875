// Package config defines the tool configuration and its defaults.
//
// Configuration is layered: built-in defaults, an optional gkectl.yaml
// file, the GOOGLE_CLOUD_PROJECT environment variable, and explicit CLI
// flags, with later layers winning. The project is the one hard
// precondition: cluster lifecycle commands refuse to run without it.
package config
