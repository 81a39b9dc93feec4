// Package bininfo holds version information injected at build time, e.g.
//
//	go build -ldflags "-X mergington.dev/backend/internal/pkg/bininfo.Version=v1.0.0"
package bininfo

import "time"

var (
	// Version is the SemVer version of the binary.
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Built returns BuildTime as a time. An unparsable BuildTime yields the Unix epoch.
func Built() time.Time {
	t, err := time.Parse(time.RFC3339, BuildTime)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}
