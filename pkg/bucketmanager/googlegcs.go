package bucketmanager

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// gcsBucketAPI abstracts the methods we need from *storage.BucketHandle.
// This is the seam that allows the adapter itself to be tested with mocks.
type gcsBucketAPI interface {
	Attrs(ctx context.Context) (*storage.BucketAttrs, error)
	Create(ctx context.Context, projectID string, attrs *storage.BucketAttrs) error
	Update(ctx context.Context, attrs storage.BucketAttrsToUpdate) (*storage.BucketAttrs, error)
	Delete(ctx context.Context) error
	Objects(ctx context.Context, q *storage.Query) gcsObjectIterator
	DeleteObject(ctx context.Context, name string) error
}

// gcsObjectIterator abstracts *storage.ObjectIterator for the forced-delete
// drain loop.
type gcsObjectIterator interface {
	Next() (*storage.ObjectAttrs, error)
}

// realGCSBucket bridges the real *storage.BucketHandle onto gcsBucketAPI.
type realGCSBucket struct {
	handle *storage.BucketHandle
}

func (r *realGCSBucket) Attrs(ctx context.Context) (*storage.BucketAttrs, error) {
	return r.handle.Attrs(ctx)
}
func (r *realGCSBucket) Create(ctx context.Context, projectID string, attrs *storage.BucketAttrs) error {
	return r.handle.Create(ctx, projectID, attrs)
}
func (r *realGCSBucket) Update(ctx context.Context, attrs storage.BucketAttrsToUpdate) (*storage.BucketAttrs, error) {
	return r.handle.Update(ctx, attrs)
}
func (r *realGCSBucket) Delete(ctx context.Context) error {
	return r.handle.Delete(ctx)
}
func (r *realGCSBucket) Objects(ctx context.Context, q *storage.Query) gcsObjectIterator {
	return r.handle.Objects(ctx, q)
}
func (r *realGCSBucket) DeleteObject(ctx context.Context, name string) error {
	return r.handle.Object(name).Delete(ctx)
}

// --- Conversion Functions ---

func fromGCSBucketAttrs(gcsAttrs *storage.BucketAttrs) *BucketAttributes {
	if gcsAttrs == nil {
		return nil
	}
	return &BucketAttributes{
		Name:              gcsAttrs.Name,
		Location:          gcsAttrs.Location,
		StorageClass:      StorageClass(gcsAttrs.StorageClass),
		VersioningEnabled: gcsAttrs.VersioningEnabled,
	}
}

func toGCSBucketAttrs(attrs *BucketAttributes) *storage.BucketAttrs {
	if attrs == nil {
		return nil
	}
	return &storage.BucketAttrs{
		Name:              attrs.Name,
		Location:          attrs.Location,
		StorageClass:      string(attrs.StorageClass),
		VersioningEnabled: attrs.VersioningEnabled,
	}
}

func toGCSBucketAttrsToUpdate(update BucketUpdate) storage.BucketAttrsToUpdate {
	gcsUpdate := storage.BucketAttrsToUpdate{}
	if update.StorageClass != nil {
		gcsUpdate.StorageClass = string(*update.StorageClass)
	}
	if update.VersioningEnabled != nil {
		gcsUpdate.VersioningEnabled = *update.VersioningEnabled
	}
	return gcsUpdate
}

// classifyGCSError maps GCS errors onto the package's client-contract
// sentinels. conflict names the sentinel a 409 means for the calling
// operation: ErrBucketNameTaken for create, ErrBucketNotEmpty for delete.
func classifyGCSError(err error, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrBucketNotExist) {
		return ErrBucketNotExist
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return ErrBucketNotExist
		case http.StatusConflict:
			if conflict != nil {
				return fmt.Errorf("%w: %s", conflict, apiErr.Message)
			}
		}
	}
	return err
}

// --- GCS Iterator Adapter ---

type gcsBucketIteratorAdapter struct {
	it *storage.BucketIterator
}

func (a *gcsBucketIteratorAdapter) Next() (*BucketAttributes, error) {
	gcsAttrs, err := a.it.Next()
	if err != nil {
		return nil, err
	}
	return fromGCSBucketAttrs(gcsAttrs), nil
}

// --- GCS Handle/Client Adapters ---

// gcsBucketHandleAdapter adapts one GCS bucket onto the BucketHandle
// contract, translating provider errors into the package sentinels.
type gcsBucketHandleAdapter struct {
	name   string
	bucket gcsBucketAPI
}

func (a *gcsBucketHandleAdapter) Attrs(ctx context.Context) (*BucketAttributes, error) {
	gcsAttrs, err := a.bucket.Attrs(ctx)
	if err != nil {
		return nil, classifyGCSError(err, nil)
	}
	return fromGCSBucketAttrs(gcsAttrs), nil
}

func (a *gcsBucketHandleAdapter) Create(ctx context.Context, projectID string, attrs *BucketAttributes) error {
	if err := a.bucket.Create(ctx, projectID, toGCSBucketAttrs(attrs)); err != nil {
		return classifyGCSError(err, ErrBucketNameTaken)
	}
	return nil
}

func (a *gcsBucketHandleAdapter) Update(ctx context.Context, update BucketUpdate) (*BucketAttributes, error) {
	updatedGCSAttrs, err := a.bucket.Update(ctx, toGCSBucketAttrsToUpdate(update))
	if err != nil {
		return nil, classifyGCSError(err, nil)
	}
	return fromGCSBucketAttrs(updatedGCSAttrs), nil
}

func (a *gcsBucketHandleAdapter) Delete(ctx context.Context, force bool) error {
	if force {
		// GCS has no server-side forced delete; a forced delete removes the
		// contained objects first, then the bucket itself.
		if err := a.drainObjects(ctx); err != nil {
			return fmt.Errorf("failed to empty bucket %q before deletion: %w", a.name, err)
		}
	}
	if err := a.bucket.Delete(ctx); err != nil {
		return classifyGCSError(err, ErrBucketNotEmpty)
	}
	return nil
}

// drainObjects deletes every object in the bucket.
func (a *gcsBucketHandleAdapter) drainObjects(ctx context.Context) error {
	it := a.bucket.Objects(ctx, nil)
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := a.bucket.DeleteObject(ctx, obj.Name); err != nil {
			return fmt.Errorf("failed to delete object %q: %w", obj.Name, err)
		}
	}
}

// gcsClientAdapter wraps a *storage.Client to conform to our StorageClient
// interface.
type gcsClientAdapter struct {
	client *storage.Client
}

func (a *gcsClientAdapter) Bucket(name string) BucketHandle {
	return &gcsBucketHandleAdapter{
		name:   name,
		bucket: &realGCSBucket{handle: a.client.Bucket(name)},
	}
}

func (a *gcsClientAdapter) Buckets(ctx context.Context, projectID string) BucketIterator {
	return &gcsBucketIteratorAdapter{it: a.client.Buckets(ctx, projectID)}
}

func (a *gcsClientAdapter) Close() error {
	return a.client.Close()
}

// NewGCSClientAdapter creates a new StorageClient adapter from a concrete
// *storage.Client.
func NewGCSClientAdapter(client *storage.Client) StorageClient {
	if client == nil {
		return nil
	}
	return &gcsClientAdapter{client: client}
}

// CreateGoogleGCSClient creates a real GCS client wrapped in the
// StorageClient interface.
func CreateGoogleGCSClient(ctx context.Context, clientOpts ...option.ClientOption) (StorageClient, error) {
	realClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return NewGCSClientAdapter(realClient), nil
}
