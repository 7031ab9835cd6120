// Package telemetry provides structured logging for repokeeper.
//
// Logging is built on zerolog. Components obtain child loggers via
// NewComponentLogger so every line carries a component field, and the
// reconciler tags each run with a run_id. Loggers travel on the context
// via WithContext / FromContext so generators can log without extra
// plumbing in their signatures.
package telemetry
