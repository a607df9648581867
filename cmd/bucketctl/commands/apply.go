package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjlshen/google-storage-bucket/cmd/bucketctl/handlers"
	"github.com/mjlshen/google-storage-bucket/pkg/bucketmanager"
)

// specFlags binds the fields of a bucket spec to command-line flags.
// A spec file provides the base values; any flag that was set explicitly
// overrides the file.
type specFlags struct {
	specFile     string
	name         string
	project      string
	state        string
	storageClass string
	location     string
	versioning   bool
	force        bool
}

func (f *specFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.specFile, "spec-file", "f", "", "Path to a YAML bucket spec")
	flags.StringVar(&f.name, "name", "", "Bucket name (globally unique across GCP)")
	flags.StringVar(&f.project, "project", "", "Project that owns the bucket (defaults to GOOGLE_CLOUD_PROJECT)")
	flags.StringVar(&f.state, "state", "", "Target state: present or absent (default present)")
	flags.StringVar(&f.storageClass, "storage-class", "", "Default storage class: STANDARD, NEARLINE, COLDLINE or ARCHIVE")
	flags.StringVar(&f.location, "location", "", "Bucket location, fixed at creation time (default us)")
	flags.BoolVar(&f.versioning, "versioning", false, "Enable object versioning")
	flags.BoolVar(&f.force, "force", false, "Delete the bucket even if it contains objects")
}

// toSpec merges the spec file (if any) with explicitly set flags.
func (f *specFlags) toSpec(cmd *cobra.Command) (bucketmanager.BucketSpec, error) {
	var spec bucketmanager.BucketSpec
	if f.specFile != "" {
		loaded, err := bucketmanager.LoadSpec(f.specFile)
		if err != nil {
			return spec, err
		}
		spec = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		spec.Name = f.name
	}
	if flags.Changed("project") {
		spec.Project = f.project
	}
	if flags.Changed("state") {
		spec.TargetState = bucketmanager.TargetState(f.state)
	}
	if flags.Changed("storage-class") {
		spec.StorageClass = bucketmanager.StorageClass(f.storageClass)
	}
	if flags.Changed("location") {
		spec.Location = f.location
	}
	if flags.Changed("versioning") {
		spec.VersioningEnabled = f.versioning
	}
	if flags.Changed("force") {
		spec.ForceDelete = f.force
	}

	if spec.Project == "" {
		spec.Project = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	return spec, nil
}

// Apply returns the command that reconciles the bucket for real.
func Apply() *cobra.Command {
	f := &specFlags{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create, update or delete the bucket to match the spec",
		Long: `Reconcile the named bucket against the desired spec.

The bucket is observed fresh, the minimal action is decided (none, create,
field updates, delete) and applied. Re-running against a converged bucket is
a no-op.

Examples:
  # Ensure a bucket exists
  bucketctl apply --name my-project-bucket --project my-project \
      --storage-class NEARLINE --location us-central1

  # Drive the same thing from a spec file
  bucketctl apply -f bucket.yaml

  # Remove a bucket, even if it still has objects
  bucketctl apply --name my-project-bucket --state absent --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := f.toSpec(cmd)
			if err != nil {
				return err
			}
			return handlers.Reconcile(cmd.Context(), spec, false)
		},
	}

	f.register(cmd)
	return cmd
}

// Preview returns the command that predicts the outcome without mutating
// anything remotely.
func Preview() *cobra.Command {
	f := &specFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Report what apply would change, without changing it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := f.toSpec(cmd)
			if err != nil {
				return err
			}
			return handlers.Reconcile(cmd.Context(), spec, true)
		},
	}

	f.register(cmd)
	return cmd
}
