package bucketmanager

// BucketField identifies a mutable bucket attribute.
type BucketField string

const (
	FieldStorageClass      BucketField = "storage_class"
	FieldVersioningEnabled BucketField = "versioning_enabled"
)

// BucketDiff holds the desired values for the mutable fields that differ
// between a spec and the observed bucket. Name and Location are identity and
// write-once attributes and are never part of a diff.
type BucketDiff struct {
	StorageClass      *StorageClass
	VersioningEnabled *bool
}

// Empty reports whether the observed bucket already matches the desired
// mutable attributes.
func (d BucketDiff) Empty() bool {
	return d.StorageClass == nil && d.VersioningEnabled == nil
}

// Fields returns the diffed fields in the order updates are applied:
// storage class first, then versioning.
func (d BucketDiff) Fields() []BucketField {
	var fields []BucketField
	if d.StorageClass != nil {
		fields = append(fields, FieldStorageClass)
	}
	if d.VersioningEnabled != nil {
		fields = append(fields, FieldVersioningEnabled)
	}
	return fields
}

// DiffBucket compares the desired spec against observed attributes of an
// existing bucket. Comparison is exact, field by field, in the remote
// system's canonical casing.
func DiffBucket(spec BucketSpec, observed *BucketAttributes) BucketDiff {
	var diff BucketDiff
	if observed == nil {
		return diff
	}
	if spec.StorageClass != observed.StorageClass {
		desired := spec.StorageClass
		diff.StorageClass = &desired
	}
	if spec.VersioningEnabled != observed.VersioningEnabled {
		desired := spec.VersioningEnabled
		diff.VersioningEnabled = &desired
	}
	return diff
}
