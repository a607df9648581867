package bucketmanager

// Result is the uniform outcome record of one reconciliation. Its attribute
// fields always describe a state that is real (the post-action state, or the
// pre-action state when the action failed) or that would become real
// (preview mode). Changed reflects only actions that actually completed, so
// a partially applied update reports Changed=true alongside the error
// returned by Reconcile.
type Result struct {
	Name              string       `yaml:"name" json:"name"`
	Changed           bool         `yaml:"changed" json:"changed"`
	State             TargetState  `yaml:"state" json:"state"`
	StorageClass      StorageClass `yaml:"storage_class,omitempty" json:"storage_class,omitempty"`
	Location          string       `yaml:"location,omitempty" json:"location,omitempty"`
	VersioningEnabled bool         `yaml:"versioning_enabled" json:"versioning_enabled"`
}

// absentResult describes a bucket that does not (or would no longer) exist.
func absentResult(name string, changed bool) Result {
	return Result{Name: name, Changed: changed, State: StateAbsent}
}

// observedResult describes a bucket from real remote attributes.
func observedResult(name string, changed bool, attrs *BucketAttributes) Result {
	if attrs == nil {
		return absentResult(name, changed)
	}
	return Result{
		Name:              name,
		Changed:           changed,
		State:             StatePresent,
		StorageClass:      attrs.StorageClass,
		Location:          attrs.Location,
		VersioningEnabled: attrs.VersioningEnabled,
	}
}

// predictedCreateResult synthesizes the attributes a create would produce,
// entirely from the spec. No remote read backs this record.
func predictedCreateResult(spec BucketSpec) Result {
	return Result{
		Name:              spec.Name,
		Changed:           true,
		State:             StatePresent,
		StorageClass:      spec.StorageClass,
		Location:          spec.Location,
		VersioningEnabled: spec.VersioningEnabled,
	}
}

// predictedUpdateResult overlays the diffed desired values onto the observed
// attributes. Location stays as observed, never as specified, so previews
// agree with what an apply would actually leave behind.
func predictedUpdateResult(name string, observed *BucketAttributes, diff BucketDiff) Result {
	attrs := *observed
	if diff.StorageClass != nil {
		attrs.StorageClass = *diff.StorageClass
	}
	if diff.VersioningEnabled != nil {
		attrs.VersioningEnabled = *diff.VersioningEnabled
	}
	return observedResult(name, true, &attrs)
}
