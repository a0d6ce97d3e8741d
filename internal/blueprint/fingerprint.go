package blueprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// InputFingerprint derives a deterministic cache key from the birth data and
// the engine settings that influence the output. Two calls that would
// produce the same blueprint share a fingerprint.
func InputFingerprint(input BirthInput, policy, method string) string {
	fields := []string{
		"name:" + input.FullName,
		"date:" + input.Date,
		"time:" + input.Time,
		"tz:" + input.Timezone,
		fmt.Sprintf("loc:%.6f,%.6f", input.Location.Latitude, input.Location.Longitude),
		"policy:" + policy,
		"method:" + method,
		"engine:" + EngineVersion,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

// Fingerprint hashes the canonical encoding of the blueprint, excluding the
// per-computation metadata (id and timestamp), so recomputations of the same
// birth data verify against each other.
func (b *Blueprint) Fingerprint() (string, error) {
	stripped := *b
	stripped.Metadata.BlueprintID = ""
	stripped.Metadata.ComputedAt = time.Time{}

	data, err := sonic.ConfigStd.Marshal(&stripped)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ShortFingerprint returns the first 8 characters for display.
func ShortFingerprint(full string) string {
	if len(full) < 8 {
		return full
	}
	return full[:8]
}
