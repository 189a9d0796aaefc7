// Package constant centralizes shared constant values used across
// lib-simpletest packages: telemetry metric and event names, attribute
// prefixes, and label sanitization helpers.
//
// The package is intentionally free of dependencies on other library
// packages so that any subpackage may import it without cycles.
package constant
