package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjlshen/google-storage-bucket/cmd/bucketctl/handlers"
)

// List returns the command that prints the buckets visible in a project.
func List() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the buckets in a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if project == "" {
				project = os.Getenv("GOOGLE_CLOUD_PROJECT")
			}
			return handlers.List(cmd.Context(), project)
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project to list buckets for (defaults to GOOGLE_CLOUD_PROJECT)")
	return cmd
}
