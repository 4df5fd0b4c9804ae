// Package version provides the gridmeta version number type and the
// build metadata of the running binary.
//
// gridmeta releases are a three-component triple major.minor.patch with a
// calver major component (YYMMDD), so releases from before the calver
// switch (1.2.x) sort below every calver release.
package version

import (
	"fmt"
	"math"

	"github.com/Masterminds/semver/v3"
)

// Number is a three-component version with a total order.
//
// It carries no pre-release or build metadata; the handshake compatibility
// tables only reason about released triples.
type Number struct {
	Major uint64 `json:"major" yaml:"major"`
	Minor uint64 `json:"minor" yaml:"minor"`
	Patch uint64 `json:"patch" yaml:"patch"`
}

// New creates a version number with the given components.
func New(major, minor, patch uint64) Number {
	return Number{Major: major, Minor: minor, Patch: patch}
}

// Min returns the minimum possible version (0.0.0).
//
// Used as the initial value when calculating minimum compatible versions,
// and as the "active since the beginning" sentinel in feature lifetimes.
func Min() Number {
	return Number{}
}

// Max returns the maximum possible version.
//
// Used as the "never removed" sentinel in feature lifetimes, and as the
// "not yet adopted" reservation for client features.
func Max() Number {
	return Number{Major: math.MaxUint64, Minor: math.MaxUint64, Patch: math.MaxUint64}
}

// Compare returns -1, 0 or 1 by lexicographic order over (major, minor, patch).
func (n Number) Compare(o Number) int {
	if c := cmpUint64(n.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpUint64(n.Minor, o.Minor); c != 0 {
		return c
	}
	return cmpUint64(n.Patch, o.Patch)
}

// Less reports whether n orders strictly before o.
func (n Number) Less(o Number) bool {
	return n.Compare(o) < 0
}

// AtLeast reports whether n >= o.
func (n Number) AtLeast(o Number) bool {
	return n.Compare(o) >= 0
}

// String formats the version as "major.minor.patch".
func (n Number) String() string {
	return fmt.Sprintf("%d.%d.%d", n.Major, n.Minor, n.Patch)
}

// Uint64 packs the triple into a single integer: major*1e6 + minor*1e3 + patch.
//
// The packing assumes minor < 1000 and patch < 1000. Outside those bounds
// the component overflows into the next one (260205.1000.0 packs the same
// as 260206.0.0) and FromUint64 recovers the reinterpreted triple. This is
// documented behavior; callers relying on the packed form accept it.
func (n Number) Uint64() uint64 {
	return n.Major*1_000_000 + n.Minor*1_000 + n.Patch
}

// FromUint64 unpacks an integer produced by Number.Uint64.
func FromUint64(u uint64) Number {
	return Number{
		Major: u / 1_000_000,
		Minor: u / 1_000 % 1_000,
		Patch: u % 1_000,
	}
}

// Parse reads a "major.minor.patch" string, with an optional leading "v".
// Pre-release and build metadata are not modeled and are rejected.
func Parse(s string) (Number, error) {
	sv, err := semver.StrictNewVersion(trimV(s))
	if err != nil {
		return Number{}, err
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Number{}, fmt.Errorf("version %q carries pre-release or build metadata", s)
	}
	return FromSemver(sv), nil
}

// FromSemver converts a parsed semver, keeping only the numeric triple.
func FromSemver(sv *semver.Version) Number {
	return New(sv.Major(), sv.Minor(), sv.Patch())
}

// Semver converts the triple to a semver version.
func (n Number) Semver() *semver.Version {
	return semver.New(n.Major, n.Minor, n.Patch, "", "")
}

func trimV(s string) string {
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		return s[1:]
	}
	return s
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
