package compat

import (
	"fmt"

	"github.com/gridmeta/gridmeta/version"
)

// Span is the half-open lifetime [Since, Until) of one feature for one role.
type Span struct {
	// Feature being described.
	Feature Feature `json:"feature" yaml:"feature"`

	// Since is the version the feature was added (inclusive).
	Since version.Number `json:"since" yaml:"since"`

	// Until is the version the feature was removed (exclusive).
	// version.Max() means the feature has not been removed.
	Until version.Number `json:"until" yaml:"until"`
}

// NewSpan creates a lifetime starting at since with no end.
func NewSpan(f Feature, since version.Number) Span {
	return Span{Feature: f, Since: since, Until: version.Max()}
}

// WithUntil returns a copy of the span ending (exclusively) at until.
func (s Span) WithUntil(until version.Number) Span {
	s.Until = until
	return s
}

// ActiveAt reports whether the feature is active at v: Since <= v < Until.
func (s Span) ActiveAt(v version.Number) bool {
	return v.AtLeast(s.Since) && v.Less(s.Until)
}

func (s Span) String() string {
	until := "-"
	if s.Until != version.Max() {
		until = s.Until.String()
	}
	return fmt.Sprintf("%s[%s, %s)", s.Feature, s.Since, until)
}
