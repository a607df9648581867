package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version returns the command that prints the build version.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bucketctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "bucketctl", version)
		},
	}
}
