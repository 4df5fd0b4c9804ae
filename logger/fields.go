package logger

// Standard field names for consistent structured logging across gridmeta.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Versions and handshake
	FieldVersion          = "version"
	FieldPeerVersion      = "peer_version"
	FieldMinServerVersion = "min_server_version"
	FieldMinClientVersion = "min_client_version"
	FieldRole             = "role"
	FieldFeature          = "feature"

	// Errors
	FieldError = "error"
)
