// Package main is the entry point for the gkectl CLI.
//
// gkectl manages the lifecycle of GKE clusters used for API-gateway
// response-cache testing, and installs the gateway product onto them.
//
// Commands: create, delete, gateway, version, completion.
//
// For detailed usage information, run:
//
//	gkectl --help
package main

import (
	"fmt"
	"os"

	"github.com/day0ops/gkectl/cmd/gkectl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
