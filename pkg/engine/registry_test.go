package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repokeeper/repokeeper/pkg/config"
)

func noopGenerator(paths ...string) Generator {
	return func(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
		return paths, nil
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register("readme", noopGenerator()))
	require.NoError(t, registry.Register("license", noopGenerator()))
	require.NoError(t, registry.Register("tox", noopGenerator()))

	descriptors := registry.Descriptors()
	require.Len(t, descriptors, 3)
	assert.Equal(t, "readme", descriptors[0].Name)
	assert.Equal(t, "license", descriptors[1].Name)
	assert.Equal(t, "tox", descriptors[2].Name)
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register("readme", noopGenerator()))

	err := registry.Register("readme", noopGenerator())
	require.Error(t, err)
	assert.True(t, IsDuplicateRegistration(err))
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("readme", noopGenerator())

	assert.Panics(t, func() {
		registry.MustRegister("readme", noopGenerator())
	})
}

func TestRegistryDescriptorsAreACopy(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("readme", noopGenerator())

	descriptors := registry.Descriptors()
	descriptors[0].Name = "mutated"

	assert.Equal(t, "readme", registry.Descriptors()[0].Name)
}
