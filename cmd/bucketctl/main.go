// Package main is the entry point for the bucketctl CLI.
//
// bucketctl reconciles a single Google Cloud Storage bucket against a
// desired specification. Every run observes the bucket fresh, decides the
// minimal action and either applies it or, in preview mode, reports what
// would happen without touching the remote system.
//
// Commands: apply, preview, list, version.
package main

import (
	"fmt"
	"os"

	"github.com/mjlshen/google-storage-bucket/cmd/bucketctl/commands"
)

// Version is set at build time.
var version = "dev"

func main() {
	commands.SetVersion(version)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
