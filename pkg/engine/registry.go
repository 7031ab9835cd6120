package engine

import "fmt"

// Registry maps logical file names to their generators and gating flags.
// It is built explicitly by the caller before first use and is read-only
// afterwards; registration order is preserved because later generators may
// read files written by earlier ones.
type Registry struct {
	descriptors []ManagedFile
	names       map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register adds a managed file descriptor. Registering the same logical
// name twice is a programming error and returns a DuplicateRegistrationError.
func (r *Registry) Register(name string, gen Generator, flags ...string) error {
	if _, exists := r.names[name]; exists {
		return NewDuplicateRegistrationError(
			fmt.Sprintf("generator %q already registered", name))
	}

	r.names[name] = struct{}{}
	r.descriptors = append(r.descriptors, ManagedFile{
		Name:     name,
		Generate: gen,
		Flags:    flags,
	})

	return nil
}

// MustRegister is Register for the declarative build step; it panics on a
// duplicate name since that is not recoverable at runtime.
func (r *Registry) MustRegister(name string, gen Generator, flags ...string) {
	if err := r.Register(name, gen, flags...); err != nil {
		panic(err)
	}
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []ManagedFile {
	out := make([]ManagedFile, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
