// Package buildinfo derives the application's build identity: a
// minute-granularity build timestamp, a compact base-36 build number,
// and the source-control revision the binary was produced from.
//
// The raw values are baked in at build time via -ldflags (see the
// Makefile); the defaults below cover local development builds.
package buildinfo

import (
	"math"
	"os"
	"strconv"
	"sync"
	"time"
)

// Injected via -ldflags -X at build time.
var (
	semver       = "0.0.0-dev"
	gitSHA       = ""
	buildMinutes = "" // decimal whole minutes since the Unix epoch
)

// Revision environment variables, checked in preference order when no
// value was injected at build time.
const (
	envGitHubSHA = "GITHUB_SHA"
	envGitCommit = "GIT_COMMIT"
)

// unknownRevision is the sentinel for a build with no resolvable revision.
const unknownRevision = "unknown"

const (
	buildNumberWidth = 5
	base36Digits     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// maxEpochMinutes is the largest minute count convertible to seconds
// without overflowing uint64.
const maxEpochMinutes = math.MaxUint64 / 60

// Info is the build identity record returned to the front-end.
// The JSON field names are part of the wire contract.
type Info struct {
	BuildNumber  string `json:"buildNumber"`
	EpochMinutes uint64 `json:"epochMinutes"`
	Epoch        uint64 `json:"epoch"`
	Semver       string `json:"semver"`
	GitSHA       string `json:"gitSha"`
}

var load = sync.OnceValue(func() Info {
	return resolve(buildMinutes, semver, gitSHA, os.LookupEnv, time.Now)
})

// Get returns the build identity. It is resolved exactly once, before
// any query can observe it, and is immutable for the life of the process.
func Get() Info {
	return load()
}

// resolve assembles the record from the raw build-time inputs. All
// failure paths degrade to sentinels; resolve never fails.
func resolve(rawMinutes, version, injectedSHA string, lookupEnv func(string) (string, bool), now func() time.Time) Info {
	minutes := epochMinutes(rawMinutes, now)
	return Info{
		BuildNumber:  EncodeBuildNumber(minutes),
		EpochMinutes: minutes,
		Epoch:        epochSeconds(minutes),
		Semver:       version,
		GitSHA:       resolveRevision(injectedSHA, lookupEnv),
	}
}

// epochMinutes parses the baked minutes value. An empty value means the
// build did not inject one (a dev build): the count is taken from the
// wall clock instead. A present but unparseable value yields zero, so
// the build number degrades to the "00000" sentinel.
func epochMinutes(raw string, now func() time.Time) uint64 {
	if raw == "" {
		return uint64(now().Unix() / 60)
	}
	minutes, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return minutes
}

// EncodeBuildNumber encodes a count of whole minutes since the Unix
// epoch as a fixed-width base-36 string using digits 0-9A-Z. Digits
// beyond the width are truncated from the high-order end, so very large
// counts roll over rather than widen; short encodings are zero-padded
// on the left. The result always has exactly buildNumberWidth characters.
func EncodeBuildNumber(minutes uint64) string {
	// Collect digits least-significant first; at most the window we keep.
	var digits [buildNumberWidth]byte
	n := 0
	for v := minutes; v > 0 && n < buildNumberWidth; v /= 36 {
		digits[n] = base36Digits[v%36]
		n++
	}
	out := make([]byte, buildNumberWidth)
	for i := range out {
		out[i] = '0'
	}
	for i := 0; i < n; i++ {
		out[buildNumberWidth-1-i] = digits[i]
	}
	return string(out)
}

// epochSeconds converts minutes to seconds with saturating
// multiplication: counts past the representable boundary clamp to the
// maximum instead of wrapping.
func epochSeconds(minutes uint64) uint64 {
	if minutes > maxEpochMinutes {
		return math.MaxUint64
	}
	return minutes * 60
}

// resolveRevision returns the injected revision if present, then the
// environment fallbacks in preference order, then the sentinel.
func resolveRevision(injected string, lookupEnv func(string) (string, bool)) string {
	if injected != "" {
		return injected
	}
	for _, key := range []string{envGitHubSHA, envGitCommit} {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v
		}
	}
	return unknownRevision
}
