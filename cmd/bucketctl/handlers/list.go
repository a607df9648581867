package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mjlshen/google-storage-bucket/pkg/bucketmanager"
)

type listedBucket struct {
	Name              string `yaml:"name"`
	Location          string `yaml:"location"`
	StorageClass      string `yaml:"storage_class"`
	VersioningEnabled bool   `yaml:"versioning_enabled"`
}

// List prints the buckets visible in the given project.
func List(ctx context.Context, project string) error {
	if project == "" {
		return errors.New("a project is required to list buckets, set --project or GOOGLE_CLOUD_PROJECT")
	}

	client, err := bucketmanager.CreateGoogleGCSClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var buckets []listedBucket
	it := client.Buckets(ctx, project)
	for {
		attrs, err := it.Next()
		if errors.Is(err, bucketmanager.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list buckets in project %q: %w", project, err)
		}
		buckets = append(buckets, listedBucket{
			Name:              attrs.Name,
			Location:          attrs.Location,
			StorageClass:      string(attrs.StorageClass),
			VersioningEnabled: attrs.VersioningEnabled,
		})
	}

	out, err := yaml.Marshal(buckets)
	if err != nil {
		return fmt.Errorf("failed to render bucket list: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
