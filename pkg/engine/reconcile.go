package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/telemetry"
)

// Reconciler walks a registry and brings every managed file in line with
// the configuration. It performs no I/O itself and holds no transactional
// semantics across generators: a failure aborts the run immediately, but
// files already written by earlier generators are not rolled back.
type Reconciler struct {
	registry *Registry
	logger   *telemetry.Logger
}

// NewReconciler creates a reconciler over an already-populated registry.
func NewReconciler(registry *Registry, logger *telemetry.Logger) *Reconciler {
	return &Reconciler{
		registry: registry,
		logger:   logger.NewComponentLogger("reconciler"),
	}
}

// Reconcile runs every gated-in generator in registration order and returns
// the deduplicated, ordered manifest of relative file paths that were
// written. The first generator error propagates to the caller with the
// generator identity attached.
func (r *Reconciler) Reconcile(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	log := r.logger.WithRunID(uuid.NewString())
	log.Debugf("reconciling %d managed files in %s", r.registry.Len(), root)

	var manifest []string
	seen := make(map[string]struct{})

	for _, desc := range r.registry.Descriptors() {
		enabled, err := gated(cfg, desc)
		if err != nil {
			return manifest, err
		}
		if !enabled {
			log.WithField("generator", desc.Name).Debug("skipped by gating flags")
			continue
		}

		written, err := desc.Generate(ctx, root, cfg)
		if err != nil {
			return manifest, attachGenerator(err, desc.Name)
		}

		log.WithField("generator", desc.Name).
			WithField("files", written).
			Debug("generator finished")

		for _, path := range written {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			manifest = append(manifest, path)
		}
	}

	return manifest, nil
}

// gated evaluates a descriptor's gating flags as a conjunction. Gating on
// a flag name the configuration does not declare is a caller error.
func gated(cfg *config.Project, desc ManagedFile) (bool, error) {
	for _, flag := range desc.Flags {
		value, known := cfg.Flag(flag)
		if !known {
			return false, NewConfigurationError("unknown gating flag", nil).
				WithOption(flag).
				WithGenerator(desc.Name)
		}
		if !value {
			return false, nil
		}
	}
	return true, nil
}

// attachGenerator stamps generator identity onto classified errors that do
// not carry it yet; other errors are wrapped with plain context.
func attachGenerator(err error, name string) error {
	var e *Error
	if errors.As(err, &e) {
		if e.Generator == "" {
			e.Generator = name
		}
		return err
	}
	return fmt.Errorf("generator %s: %w", name, err)
}
