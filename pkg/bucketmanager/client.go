package bucketmanager

import (
	"context"

	"google.golang.org/api/iterator" // For the Done error
)

// BucketAttributes is the normalized remote representation of a bucket.
// It is the common denominator the reconciler works with, independent of the
// provider that produced it.
type BucketAttributes struct {
	Name              string
	Location          string
	StorageClass      StorageClass
	VersioningEnabled bool
}

// BucketUpdate selects mutable attributes to change on an existing bucket.
// Pointers distinguish "set this value" from "leave untouched". The
// reconciler issues one update call per field, so at most one pointer is set
// per call.
type BucketUpdate struct {
	StorageClass      *StorageClass
	VersioningEnabled *bool
}

// BucketHandle defines the per-bucket operations the reconciler needs.
// Implementations translate provider errors into the package sentinels:
// Attrs returns ErrBucketNotExist for a missing bucket, Create returns
// ErrBucketNameTaken on a naming collision, and Delete returns
// ErrBucketNotEmpty or ErrBucketNotExist as appropriate.
type BucketHandle interface {
	Attrs(ctx context.Context) (*BucketAttributes, error)
	Create(ctx context.Context, projectID string, attrs *BucketAttributes) error
	Update(ctx context.Context, update BucketUpdate) (*BucketAttributes, error)
	Delete(ctx context.Context, force bool) error
}

// BucketIterator defines a generic interface for iterating over buckets.
type BucketIterator interface {
	// Next returns the next bucket's attributes in the sequence.
	// When there are no more buckets, it returns Done.
	Next() (*BucketAttributes, error)
}

// StorageClient defines a generic interface for a storage control-plane
// client. A single client is constructed by the invocation surface and passed
// into the reconciler, so tests can substitute a fake.
type StorageClient interface {
	Bucket(name string) BucketHandle
	Buckets(ctx context.Context, projectID string) BucketIterator
	Close() error
}

// Done is the sentinel error returned by BucketIterator.Next when the
// iteration is finished. Re-exported from the google iterator package to
// avoid a direct dependency in consumers.
var Done = iterator.Done
