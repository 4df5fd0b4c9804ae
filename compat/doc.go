// Package compat tracks the lifetime of every gridmeta protocol feature
// on both the server and client sides: when it was added and when, if
// ever, it was removed. From that history it computes the oldest peer
// build each side can interoperate with.
//
// Each feature has a half-open lifetime [since, until):
//   - since: the version when the feature was introduced (inclusive).
//   - until: the version when the feature was removed (exclusive), or
//     version.Max() if the feature is still active.
//
// A feature is active at version V when since <= V < until.
//
// The handshake layer consults the two thresholds on every connection
// attempt:
//
//	reg := compat.MustDefault()
//	minServer := reg.MinCompatibleServerVersion()
//	minClient := reg.MinCompatibleClientVersion()
//
// The registry is built once per process from the chronological event
// table in history.go, validated against the full feature catalog, and is
// immutable afterwards; reads need no synchronization.
package compat
