package bucketmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Reconciler drives a single named bucket toward its desired state. Each
// invocation observes the remote state fresh, decides the minimal action
// (none, create, per-field update, delete) and, unless previewing, executes
// it. Every remote call is attempted exactly once; there is no internal
// retry loop, and concurrent invocations against the same bucket are not
// coordinated here.
type Reconciler struct {
	client  StorageClient
	fetcher *StateFetcher
	logger  zerolog.Logger
}

// NewReconciler creates a reconciler around the given storage client. The
// client is injected so tests can substitute a fake.
func NewReconciler(client StorageClient, logger zerolog.Logger) (*Reconciler, error) {
	if client == nil {
		return nil, errors.New("storage client (StorageClient interface) cannot be nil")
	}
	fetcher, err := NewStateFetcher(client, logger)
	if err != nil {
		return nil, err
	}
	return &Reconciler{
		client:  client,
		fetcher: fetcher,
		logger:  logger.With().Str("component", "Reconciler").Logger(),
	}, nil
}

// Reconcile runs one reconciliation of the bucket described by spec. With
// preview true it predicts the outcome without issuing any mutating call;
// preview and apply must never disagree about what would happen, so the
// observation still runs and an unreadable bucket fails the preview too.
//
// The returned Result is populated even when err is non-nil: its attributes
// then reflect the bucket's real, unchanged state, and Changed reflects only
// actions that completed before the failure.
func (r *Reconciler) Reconcile(ctx context.Context, spec BucketSpec, preview bool) (Result, error) {
	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return Result{Name: spec.Name}, err
	}

	log := r.logger.With().Str("bucket", spec.Name).Bool("preview", preview).Logger()

	observed, err := r.fetcher.Observe(ctx, spec.Name)
	if err != nil {
		return Result{Name: spec.Name}, err
	}

	switch spec.TargetState {
	case StatePresent:
		return r.reconcilePresent(ctx, log, spec, observed, preview)
	case StateAbsent:
		return r.reconcileAbsent(ctx, log, spec, observed, preview)
	default:
		// Validate has already rejected anything else.
		return Result{Name: spec.Name}, &ValidationError{Reason: fmt.Sprintf("unknown target state %q", spec.TargetState)}
	}
}

func (r *Reconciler) reconcilePresent(ctx context.Context, log zerolog.Logger, spec BucketSpec, observed *ObservedState, preview bool) (Result, error) {
	if !observed.Exists {
		if preview {
			log.Info().Msg("Bucket does not exist, a create is required.")
			return predictedCreateResult(spec), nil
		}
		return r.createBucket(ctx, log, spec)
	}

	diff := DiffBucket(spec, observed.Attrs)
	if diff.Empty() {
		log.Info().Msg("Bucket already matches the desired spec.")
		return observedResult(spec.Name, false, observed.Attrs), nil
	}
	if preview {
		log.Info().Int("fields", len(diff.Fields())).Msg("Bucket differs from the desired spec, an update is required.")
		return predictedUpdateResult(spec.Name, observed.Attrs, diff), nil
	}
	return r.updateBucket(ctx, log, spec, observed, diff)
}

func (r *Reconciler) reconcileAbsent(ctx context.Context, log zerolog.Logger, spec BucketSpec, observed *ObservedState, preview bool) (Result, error) {
	if !observed.Exists {
		log.Info().Msg("Bucket does not exist, nothing to delete.")
		return absentResult(spec.Name, false), nil
	}
	if preview {
		log.Info().Msg("Bucket exists, a delete is required.")
		return absentResult(spec.Name, true), nil
	}
	return r.deleteBucket(ctx, log, spec, observed)
}

func (r *Reconciler) createBucket(ctx context.Context, log zerolog.Logger, spec BucketSpec) (Result, error) {
	if spec.Project == "" {
		return absentResult(spec.Name, false), &ValidationError{
			Reason: fmt.Sprintf("project is required to create bucket %q", spec.Name),
		}
	}

	log.Info().Str("location", spec.Location).Str("storage_class", string(spec.StorageClass)).Msg("Bucket does not exist, creating.")
	handle := r.client.Bucket(spec.Name)
	attrs := &BucketAttributes{
		Name:              spec.Name,
		Location:          spec.Location,
		StorageClass:      spec.StorageClass,
		VersioningEnabled: spec.VersioningEnabled,
	}
	if err := handle.Create(ctx, spec.Project, attrs); err != nil {
		if errors.Is(err, ErrBucketNameTaken) {
			return absentResult(spec.Name, false), newNamingConflict(spec.Name)
		}
		return absentResult(spec.Name, false), fmt.Errorf("failed to create bucket %q: %w", spec.Name, err)
	}

	// The remote system is authoritative for the final attributes, so read
	// them back rather than echoing the request.
	created, err := handle.Attrs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Bucket created but reading back its attributes failed.")
		return predictedCreateResult(spec), fmt.Errorf("bucket %q was created but reading back its attributes failed: %w", spec.Name, err)
	}
	log.Info().Msg("Bucket created successfully.")
	return observedResult(spec.Name, true, created), nil
}

func (r *Reconciler) updateBucket(ctx context.Context, log zerolog.Logger, spec BucketSpec, observed *ObservedState, diff BucketDiff) (Result, error) {
	if spec.Project == "" {
		return observedResult(spec.Name, false, observed.Attrs), &ValidationError{
			Reason: fmt.Sprintf("project is required to update bucket %q", spec.Name),
		}
	}

	handle := r.client.Bucket(spec.Name)
	current := observed.Attrs
	changed := false
	var updateErrs []error

	// Each mutable field is its own remote call, applied in diff order and
	// never short-circuited: a failure on one field must not stop the
	// others, and callers can tell a partial update happened because
	// Changed stays true alongside the joined error.
	for _, field := range diff.Fields() {
		var update BucketUpdate
		switch field {
		case FieldStorageClass:
			update.StorageClass = diff.StorageClass
		case FieldVersioningEnabled:
			update.VersioningEnabled = diff.VersioningEnabled
		}

		updated, err := handle.Update(ctx, update)
		if err != nil {
			updateErrs = append(updateErrs, fmt.Errorf("failed to update %s of bucket %q: %w", field, spec.Name, err))
			continue
		}
		log.Info().Str("field", string(field)).Msg("Bucket attribute updated.")
		changed = true
		current = updated
	}

	return observedResult(spec.Name, changed, current), errors.Join(updateErrs...)
}

func (r *Reconciler) deleteBucket(ctx context.Context, log zerolog.Logger, spec BucketSpec, observed *ObservedState) (Result, error) {
	log.Info().Bool("force", spec.ForceDelete).Msg("Attempting to delete bucket...")
	err := r.client.Bucket(spec.Name).Delete(ctx, spec.ForceDelete)
	switch {
	case err == nil:
		log.Info().Msg("Bucket deleted successfully.")
		return absentResult(spec.Name, true), nil
	case errors.Is(err, ErrBucketNotExist):
		// Deleted by someone else between the observation and our call.
		// Deleting an absent bucket is idempotent, not an error.
		log.Info().Msg("Bucket was already gone at delete time.")
		return absentResult(spec.Name, false), nil
	case errors.Is(err, ErrBucketNotEmpty):
		return observedResult(spec.Name, false, observed.Attrs), newNotEmptyConflict(spec.Name)
	default:
		return observedResult(spec.Name, false, observed.Attrs), fmt.Errorf("failed to delete bucket %q: %w", spec.Name, err)
	}
}
