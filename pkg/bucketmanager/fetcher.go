package bucketmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ObservedState is the freshly observed remote state of a single bucket.
// It is recomputed on every invocation and discarded afterwards; no handle
// survives the call. Attrs is nil exactly when Exists is false.
type ObservedState struct {
	Exists bool
	Attrs  *BucketAttributes
}

// StateFetcher resolves the current remote state of a named bucket,
// normalizing "not found" into a value rather than an error. It performs no
// side effects and is safe to call in preview mode.
type StateFetcher struct {
	client StorageClient
	logger zerolog.Logger
}

// NewStateFetcher creates a fetcher backed by the given storage client.
func NewStateFetcher(client StorageClient, logger zerolog.Logger) (*StateFetcher, error) {
	if client == nil {
		return nil, errors.New("storage client (StorageClient interface) cannot be nil")
	}
	return &StateFetcher{
		client: client,
		logger: logger.With().Str("component", "StateFetcher").Logger(),
	}, nil
}

// Observe fetches the bucket's attributes. A missing bucket yields
// {Exists: false} with a nil error; any other remote failure propagates so
// callers never mistake an unreadable bucket for an absent one.
func (sf *StateFetcher) Observe(ctx context.Context, name string) (*ObservedState, error) {
	attrs, err := sf.client.Bucket(name).Attrs(ctx)
	if errors.Is(err, ErrBucketNotExist) {
		sf.logger.Debug().Str("bucket", name).Msg("Bucket does not exist.")
		return &ObservedState{Exists: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check existence of bucket %q: %w", name, err)
	}
	return &ObservedState{Exists: true, Attrs: attrs}, nil
}
