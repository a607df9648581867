package bucketmanager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjlshen/google-storage-bucket/pkg/bucketmanager"
)

func setupFetcherTest(t *testing.T, name string) (*bucketmanager.StateFetcher, *MockBucketHandle) {
	t.Helper()
	mockClient := new(MockStorageClient)
	mockHandle := new(MockBucketHandle)
	mockClient.On("Bucket", name).Return(mockHandle)

	fetcher, err := bucketmanager.NewStateFetcher(mockClient, zerolog.Nop())
	require.NoError(t, err)
	return fetcher, mockHandle
}

func TestNewStateFetcher(t *testing.T) {
	t.Run("Nil Client", func(t *testing.T) {
		_, err := bucketmanager.NewStateFetcher(nil, zerolog.Nop())
		assert.Error(t, err)
	})
}

func TestStateFetcher_Observe(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing Bucket", func(t *testing.T) {
		fetcher, mockHandle := setupFetcherTest(t, "obs-bucket")
		attrs := &bucketmanager.BucketAttributes{
			Name:              "obs-bucket",
			Location:          "us",
			StorageClass:      bucketmanager.StorageClassArchive,
			VersioningEnabled: true,
		}
		mockHandle.On("Attrs", ctx).Return(attrs, nil).Once()

		observed, err := fetcher.Observe(ctx, "obs-bucket")

		require.NoError(t, err)
		assert.True(t, observed.Exists)
		assert.Equal(t, attrs, observed.Attrs)
	})

	t.Run("Missing Bucket Is A Value, Not An Error", func(t *testing.T) {
		fetcher, mockHandle := setupFetcherTest(t, "obs-bucket")
		mockHandle.On("Attrs", ctx).Return(nil, bucketmanager.ErrBucketNotExist).Once()

		observed, err := fetcher.Observe(ctx, "obs-bucket")

		require.NoError(t, err)
		assert.False(t, observed.Exists)
		assert.Nil(t, observed.Attrs)
	})

	t.Run("Other Failures Propagate", func(t *testing.T) {
		fetcher, mockHandle := setupFetcherTest(t, "obs-bucket")
		authErr := errors.New("googleapi: Error 401: unauthorized")
		mockHandle.On("Attrs", ctx).Return(nil, authErr).Once()

		_, err := fetcher.Observe(ctx, "obs-bucket")

		require.Error(t, err)
		assert.ErrorIs(t, err, authErr)
		assert.Contains(t, err.Error(), "obs-bucket")
	})
}
