package engine

import (
	"context"

	"github.com/repokeeper/repokeeper/pkg/config"
)

// Generator produces or updates one managed file (or a small family of
// related files) under the repository root. It returns the relative,
// POSIX-separated paths of every file it wrote. Generators perform their
// own idempotent writes: full overwrite for fully-managed files,
// read-merge-write via the sentinel block merger for partially-managed ones.
type Generator func(ctx context.Context, root string, cfg *config.Project) ([]string, error)

// ManagedFile describes one entry in the registry: a logical name, the
// generating function, and the configuration flags that gate whether the
// file is produced at all. Gating flags are evaluated as a conjunction.
type ManagedFile struct {
	// Name is the logical name, unique within the registry.
	Name string

	// Generate is the generating function.
	Generate Generator

	// Flags lists the gating flag names. Empty means always generated.
	Flags []string
}
