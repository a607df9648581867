package bucketmanager

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// bucketNameRegex checks that a name uses only characters GCS allows and has
// valid first/last characters. It does not enforce every GCS rule (names
// cannot look like IP addresses, cannot start with "goog", etc.); it is a
// pre-flight sanity check only.
var bucketNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-_.]{1,61}[a-z0-9]$`)

// maxBucketNameLength is the maximum character length for a GCS bucket name.
const maxBucketNameLength = 63

// IsValidBucketName reports whether a string is a plausible GCS bucket name.
func IsValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > maxBucketNameLength {
		return false
	}
	return bucketNameRegex.MatchString(name)
}

// GenerateTestBucketName creates a unique, valid bucket name for tests:
// the prefix plus a compact UUID, lowercased and trimmed to the GCS limit.
func GenerateTestBucketName(prefix string) string {
	uniqueID := strings.ReplaceAll(uuid.New().String(), "-", "")
	name := strings.ToLower(fmt.Sprintf("%s-%s", prefix, uniqueID))

	if len(name) > maxBucketNameLength {
		name = name[:maxBucketNameLength]
	}
	// Trimming can leave an invalid trailing separator.
	name = strings.TrimRight(name, "-_.")
	return name
}
