// Package zap provides the zap-backed implementation of the log.Logger
// interface used by lib-simpletest.
//
// The logger emits JSON to stderr, keeping stdout free for the normative
// check trace. When the context carries an active OpenTelemetry span,
// trace_id and span_id fields are appended automatically.
package zap
