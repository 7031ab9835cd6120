// Package engine provides the managed-file reconciliation core of repokeeper.
//
// # Overview
//
// A repository managed by repokeeper contains two kinds of content: files the
// user owns outright, and managed files whose content (or a delimited region
// within it) is regenerated deterministically from the configuration. The
// engine ties the two flows together:
//
//  1. Registry - maps each managed file's logical name to its generator and
//     the configuration flags gating it (Registry)
//  2. Reconcile - walks the registry in registration order, runs every
//     gated-in generator and accumulates the manifest of written files
//     (Reconciler)
//
// Generators do their own writing. Fully-managed files (LICENSE, tox.ini,
// CI pipelines) are overwritten whole; partially-managed files (README,
// docs index) are updated in place between sentinel marker lines by the
// blocks package, preserving all surrounding user content.
//
// # Registration
//
// The registry is an explicit object built by the caller before first use,
// not hidden process-wide state:
//
//	registry := engine.NewRegistry()
//	registry.MustRegister("readme", files.Readme)
//	registry.MustRegister("conda_recipe", files.CondaRecipe, "enable_conda")
//
//	rec := engine.NewReconciler(registry, logger)
//	manifest, err := rec.Reconcile(ctx, root, cfg)
//
// Registering two generators under the same logical name is a programming
// error and fails with a duplicate_registration Error.
//
// # Error Classification
//
// Errors carry a Kind plus the offending option name and generator identity
// so a user can fix the configuration file directly:
//
//   - configuration: required option missing or malformed
//   - duplicate_registration: registry build bug, fatal
//   - template_render: failure inside the template engine, never swallowed
//   - marker_not_found: mandatory sentinel pair absent from an existing file
//
// Use the predicates to classify:
//
//	if engine.IsConfiguration(err) {
//	    // point the user at the offending option
//	}
//
// # Failure Semantics
//
// Reconcile aborts on the first generator error and does not roll back files
// written by earlier generators. Callers wanting atomicity must wrap the
// whole call in their own backup/restore discipline.
package engine
