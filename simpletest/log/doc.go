// Package log defines the minimal structured logging contract used across
// lib-simpletest.
//
// The package deliberately contains only the Logger interface, severity
// levels, typed Field constructors, and a no-op implementation. Concrete
// backends live in sibling packages; see simpletest/zap for the production
// implementation.
//
// Note that check output itself never goes through a Logger: the check trace
// and summaries are a normative stdout format (see the simpletest package).
// Logging here carries diagnostics only.
package log
