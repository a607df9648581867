// Package commands defines the bucketctl command tree and flag bindings.
// Command execution is delegated to the handlers package.
package commands

import "github.com/spf13/cobra"

var version = "dev"

// SetVersion records the build version reported by the version command.
func SetVersion(v string) { version = v }

// Root returns the root command for the bucketctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bucketctl",
		Short:         "Reconcile a Google Cloud Storage bucket against a desired spec",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Apply())
	cmd.AddCommand(Preview())
	cmd.AddCommand(List())
	cmd.AddCommand(Version())

	return cmd
}
