package bucketmanager

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TargetState is the desired lifecycle state of a bucket.
type TargetState string

const (
	// StatePresent means the bucket should exist with the desired attributes.
	StatePresent TargetState = "present"
	// StateAbsent means the bucket should not exist.
	StateAbsent TargetState = "absent"
)

// StorageClass is a bucket's default storage class, in the canonical casing
// used by the GCS API.
type StorageClass string

const (
	StorageClassStandard StorageClass = "STANDARD"
	StorageClassNearline StorageClass = "NEARLINE"
	StorageClassColdline StorageClass = "COLDLINE"
	StorageClassArchive  StorageClass = "ARCHIVE"
)

// DefaultLocation is used when a spec does not name a location.
const DefaultLocation = "us"

// BucketSpec is the desired state of a single bucket. Name, Location and the
// project a bucket belongs to are fixed at creation time; only StorageClass
// and VersioningEnabled are mutable afterwards.
type BucketSpec struct {
	Name              string       `yaml:"name"`
	Project           string       `yaml:"project,omitempty"`
	TargetState       TargetState  `yaml:"state,omitempty"`
	StorageClass      StorageClass `yaml:"storage_class,omitempty"`
	Location          string       `yaml:"location,omitempty"`
	VersioningEnabled bool         `yaml:"versioning_enabled,omitempty"`
	ForceDelete       bool         `yaml:"force_delete,omitempty"`
}

// WithDefaults returns a copy of the spec with unset optional fields filled
// in: state present, storage class STANDARD, location "us".
func (s BucketSpec) WithDefaults() BucketSpec {
	if s.TargetState == "" {
		s.TargetState = StatePresent
	}
	if s.StorageClass == "" {
		s.StorageClass = StorageClassStandard
	}
	if s.Location == "" {
		s.Location = DefaultLocation
	}
	return s
}

// Validate reports whether the spec is internally consistent. Project is not
// checked here because it is only required on the create and update apply
// paths; the reconciler checks it before issuing those calls.
func (s BucketSpec) Validate() error {
	if s.Name == "" {
		return &ValidationError{Reason: "bucket name is required"}
	}
	switch s.TargetState {
	case StatePresent, StateAbsent:
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown target state %q, must be %q or %q", s.TargetState, StatePresent, StateAbsent)}
	}
	switch s.StorageClass {
	case StorageClassStandard, StorageClassNearline, StorageClassColdline, StorageClassArchive:
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown storage class %q", s.StorageClass)}
	}
	return nil
}

// LoadSpec reads a BucketSpec from a YAML file.
func LoadSpec(path string) (*BucketSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	spec := &BucketSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}
	return spec, nil
}
