package bucketmanager

import (
	"errors"
	"fmt"
)

// Sentinel errors that StorageClient implementations must return so the
// reconciler can react to remote conditions without depending on a specific
// cloud provider's error types.
var (
	// ErrBucketNotExist is returned when the named bucket is not found.
	ErrBucketNotExist = errors.New("storage: bucket does not exist")
	// ErrBucketNotEmpty is returned when a non-forced delete hits a bucket
	// that still contains objects.
	ErrBucketNotEmpty = errors.New("storage: bucket is not empty")
	// ErrBucketNameTaken is returned when a create collides with a bucket of
	// the same name owned elsewhere. Bucket names are global across GCP.
	ErrBucketNameTaken = errors.New("storage: bucket name is already in use")
)

// ValidationError reports a desired specification that is internally
// inconsistent, such as a create without a project. It is always detected
// before any remote call is made and is never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError reports a remote conflict the caller can act on: a naming
// collision on create, or a non-empty bucket on a non-forced delete. The
// message always embeds the bucket name.
type ConflictError struct {
	Bucket string
	msg    string
	cause  error
}

func (e *ConflictError) Error() string { return e.msg }

func (e *ConflictError) Unwrap() error { return e.cause }

func newNamingConflict(name string) *ConflictError {
	return &ConflictError{
		Bucket: name,
		msg:    fmt.Sprintf("naming conflict: bucket %q already exists in another project", name),
		cause:  ErrBucketNameTaken,
	}
}

func newNotEmptyConflict(name string) *ConflictError {
	return &ConflictError{
		Bucket: name,
		msg:    fmt.Sprintf("conflict: bucket %q is not empty, set force_delete to true to delete it anyway", name),
		cause:  ErrBucketNotEmpty,
	}
}
