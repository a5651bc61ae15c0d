// Package version holds build information for the urlcore binary and a
// reusable version command.
package version

import "fmt"

// Info holds version information.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Name      string `json:"name"`
}

// Build-time values, set with -ldflags "-X github.com/jongio/browser-core/version.Version=...".
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// New creates an Info for the named binary from the build-time values.
func New(name string) *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		Name:      name,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
