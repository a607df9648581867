// Package handlers implements the bucketctl command logic: it wires one GCS
// client into one reconciler and renders the outcome.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mjlshen/google-storage-bucket/pkg/bucketmanager"
)

// newLogger builds the CLI logger. A short invocation id lets the log lines
// of one run be correlated.
func newLogger() zerolog.Logger {
	runID := uuid.New().String()[:8]
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", runID).Logger()
}

// renderedResult is the Result record as printed, with the failure reason
// folded in so callers see one uniform document.
type renderedResult struct {
	bucketmanager.Result `yaml:",inline"`
	Error                string `yaml:"error,omitempty"`
}

func printResult(result bucketmanager.Result, reconcileErr error) error {
	rendered := renderedResult{Result: result}
	if reconcileErr != nil {
		rendered.Error = reconcileErr.Error()
	}
	out, err := yaml.Marshal(rendered)
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

// Reconcile runs one reconciliation of the bucket described by spec and
// prints the Result. The returned error is the reconciliation failure, if
// any, so the process exits non-zero on error-carrying Results.
func Reconcile(ctx context.Context, spec bucketmanager.BucketSpec, preview bool) error {
	logger := newLogger()

	if spec.Name != "" && !bucketmanager.IsValidBucketName(spec.Name) {
		logger.Warn().Str("bucket", spec.Name).Msg("Name does not look like a valid GCS bucket name, the remote call may reject it.")
	}

	client, err := bucketmanager.CreateGoogleGCSClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	reconciler, err := bucketmanager.NewReconciler(client, logger)
	if err != nil {
		return err
	}

	result, reconcileErr := reconciler.Reconcile(ctx, spec, preview)
	if err := printResult(result, reconcileErr); err != nil {
		return err
	}
	return reconcileErr
}
