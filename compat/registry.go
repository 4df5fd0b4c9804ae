package compat

import (
	"sync"

	"github.com/gridmeta/gridmeta/errors"
	"github.com/gridmeta/gridmeta/logger"
	"github.com/gridmeta/gridmeta/version"
)

// Registry holds the per-role feature lifetimes replayed from the
// historical event table, the build version they were loaded for, and the
// two compatibility thresholds computed from that history.
//
// A registry is immutable after construction and safe for concurrent use
// without synchronization.
type Registry struct {
	current version.Number
	catalog []Feature
	server  map[Feature]Span
	client  map[Feature]Span

	// Thresholds computed once at construction; the single source of
	// truth for handshake checks.
	minServer version.Number
	minClient version.Number
}

// newRegistry replays the chronological event list into per-role lifetime
// maps and validates them against the catalog. Any history violation is a
// programming error surfaced as an assertion failure.
func newRegistry(current version.Number, catalog []Feature, events []event) (*Registry, error) {
	known := make(map[Feature]bool, len(catalog))
	for _, f := range catalog {
		known[f] = true
	}

	server := make(map[Feature]Span, len(catalog))
	client := make(map[Feature]Span, len(catalog))

	for _, ev := range events {
		if !known[ev.feature] {
			return nil, errors.AssertionFailedf(
				"history references %s which is not in the catalog", ev.feature)
		}

		spans := server
		if ev.role == RoleClient {
			spans = client
		}

		span, seen := spans[ev.feature]
		switch ev.kind {
		case featureAdded:
			if seen {
				return nil, errors.AssertionFailedf(
					"%s feature %s added twice (at %s and %s)",
					ev.role, ev.feature, span.Since, ev.at)
			}
			spans[ev.feature] = NewSpan(ev.feature, ev.at)

		case featureRemoved:
			if !seen {
				return nil, errors.AssertionFailedf(
					"%s feature %s removed at %s before being added",
					ev.role, ev.feature, ev.at)
			}
			if span.Until != version.Max() {
				return nil, errors.AssertionFailedf(
					"%s feature %s removed twice (at %s and %s)",
					ev.role, ev.feature, span.Until, ev.at)
			}
			if !span.Since.Less(ev.at) {
				return nil, errors.AssertionFailedf(
					"%s feature %s removed at %s, not after its add at %s",
					ev.role, ev.feature, ev.at, span.Since)
			}
			spans[ev.feature] = span.WithUntil(ev.at)
		}
	}

	// A catalog feature with no recorded lifetime on either side means
	// someone grew the catalog without recording its history.
	for _, f := range catalog {
		if _, ok := server[f]; !ok {
			return nil, errors.AssertionFailedf("server history is missing feature %s", f)
		}
		if _, ok := client[f]; !ok {
			return nil, errors.AssertionFailedf("client history is missing feature %s", f)
		}
	}

	return &Registry{
		current:   current,
		catalog:   catalog,
		server:    server,
		client:    client,
		minServer: minCompatibleServer(current, catalog, server, client),
		minClient: minCompatibleClient(current, catalog, server, client),
	}, nil
}

// minCompatibleServer returns the oldest server able to serve a client
// running at current: the newest server-side introduction among the
// features that client build actually exercises. version.Min() when the
// client exercises nothing feature-gated.
func minCompatibleServer(current version.Number, catalog []Feature, server, client map[Feature]Span) version.Number {
	min := version.Min()
	for _, f := range catalog {
		if client[f].ActiveAt(current) && min.Less(server[f].Since) {
			min = server[f].Since
		}
	}
	return min
}

// minCompatibleClient returns the oldest client a server running at
// current can serve: the newest client-side retirement among the features
// the server no longer provides. A feature the server dropped while some
// client still depends on it (client until = version.Max()) makes every
// client incompatible; history ordering must avoid that for any feature
// pair intended to keep working.
func minCompatibleClient(current version.Number, catalog []Feature, server, client map[Feature]Span) version.Number {
	min := version.Min()
	for _, f := range catalog {
		if !server[f].ActiveAt(current) && min.Less(client[f].Until) {
			min = client[f].Until
		}
	}
	return min
}

// Version returns the build version the registry was loaded for.
func (r *Registry) Version() version.Number {
	return r.current
}

// MinCompatibleServerVersion returns the oldest server build that supports
// every feature a client at this build exercises.
func (r *Registry) MinCompatibleServerVersion() version.Number {
	return r.minServer
}

// MinCompatibleClientVersion returns the oldest client build a server at
// this build can still serve.
func (r *Registry) MinCompatibleClientVersion() version.Number {
	return r.minClient
}

// Span returns the recorded lifetime of f for the given role.
func (r *Registry) Span(role Role, f Feature) Span {
	if role == RoleClient {
		return r.client[f]
	}
	return r.server[f]
}

// Spans returns the lifetimes for one role in catalog order.
func (r *Registry) Spans(role Role) []Span {
	out := make([]Span, 0, len(r.catalog))
	for _, f := range r.catalog {
		out = append(out, r.Span(role, f))
	}
	return out
}

// CheckPeer decides whether a handshake peer of the given role is new
// enough for this build. The returned error wraps
// errors.ErrIncompatiblePeer and carries the message the handshake layer
// surfaces to the operator.
func (r *Registry) CheckPeer(peerRole Role, peer version.Number) error {
	required := r.minServer
	if peerRole == RoleClient {
		required = r.minClient
	}
	if peer.AtLeast(required) {
		return nil
	}
	return errors.WithHintf(
		errors.Wrapf(errors.ErrIncompatiblePeer,
			"peer %s version %s is below required minimum %s", peerRole, peer, required),
		"upgrade the %s to %s or newer", peerRole, required)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the process-wide registry, building and validating it on
// first use. Concurrent first callers block until the single build
// completes; afterwards the registry is a plain immutable value.
//
// An error here means a release misconfiguration or a catalog/history
// drift; callers on the startup path must not serve traffic after one.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		current, err := version.Current()
		if err != nil {
			defaultErr = err
			return
		}
		defaultReg, defaultErr = newRegistry(current, All(), history)
		if defaultErr != nil {
			return
		}
		logger.Logger.Debugw("compatibility registry loaded",
			logger.FieldVersion, current.String(),
			logger.FieldMinServerVersion, defaultReg.minServer.String(),
			logger.FieldMinClientVersion, defaultReg.minClient.String())
	})
	return defaultReg, defaultErr
}

// MustDefault is Default for startup paths that fail fast.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}
