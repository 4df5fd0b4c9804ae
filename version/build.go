package version

import (
	"fmt"
	"runtime"

	"github.com/gridmeta/gridmeta/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Release is the gridmeta release this tree was cut from. Release
	// pipelines override it via ldflags; the default tracks the current
	// release so a plain `go build` still produces a parseable version.
	Release = "260205.0.0"
)

// Info contains version and build information
type Info struct {
	Release    string `json:"release"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		Release:    Release,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("gridmeta %s (commit %s, built %s)", i.Release, i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// Current parses the build's Release string into a Number.
//
// A malformed release string is a release misconfiguration: callers on the
// startup path treat the error as fatal before serving any traffic.
func Current() (Number, error) {
	n, err := Parse(Release)
	if err != nil {
		return Number{}, errors.Wrapf(errors.ErrMalformedVersion,
			"build release string %q: %v", Release, err)
	}
	return n, nil
}

// MustCurrent is Current for startup paths that fail fast.
func MustCurrent() Number {
	n, err := Current()
	if err != nil {
		panic(err)
	}
	return n
}
