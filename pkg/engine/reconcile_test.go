package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/telemetry"
)

func testLogger(t *testing.T) *telemetry.Logger {
	t.Helper()
	logger, err := telemetry.NewLogger(telemetry.LoggingConfig{Level: "error"})
	require.NoError(t, err)
	return logger
}

func testConfig() *config.Project {
	return &config.Project{
		ModName:     "hello-world",
		EnableDocs:  true,
		EnableConda: false,
	}
}

func TestReconcileRunsGeneratorsInOrder(t *testing.T) {
	var order []string
	record := func(name string, paths ...string) Generator {
		return func(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
			order = append(order, name)
			return paths, nil
		}
	}

	registry := NewRegistry()
	registry.MustRegister("a", record("a", "a.txt"))
	registry.MustRegister("b", record("b", "b.txt"))
	registry.MustRegister("c", record("c", "c.txt"))

	manifest, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, manifest)
}

func TestReconcileGatingConjunction(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("docs", noopGenerator("docs.rst"), "enable_docs")
	registry.MustRegister("conda", noopGenerator("meta.yaml"), "enable_conda")
	registry.MustRegister("both", noopGenerator("both.txt"), "enable_docs", "enable_conda")

	manifest, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.NoError(t, err)

	// enable_docs=true, enable_conda=false: only the docs generator runs,
	// the conjunction gate fails too.
	assert.Equal(t, []string{"docs.rst"}, manifest)
}

func TestReconcileUnknownGatingFlag(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("bogus", noopGenerator(), "no_such_flag")

	_, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "no_such_flag", cerr.Option)
	assert.Equal(t, "bogus", cerr.Generator)
}

func TestReconcileAbortsOnFirstError(t *testing.T) {
	var ran []string
	record := func(name string) Generator {
		return func(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
			ran = append(ran, name)
			return []string{name}, nil
		}
	}
	failing := func(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
		return nil, NewConfigurationError("missing channels", nil).WithOption("conda_channels")
	}

	registry := NewRegistry()
	registry.MustRegister("first", record("first"))
	registry.MustRegister("broken", failing)
	registry.MustRegister("last", record("last"))

	manifest, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.Error(t, err)

	// No continuation after the failure, no rollback of earlier output.
	assert.Equal(t, []string{"first"}, ran)
	assert.Equal(t, []string{"first"}, manifest)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "broken", cerr.Generator)
	assert.Equal(t, "conda_channels", cerr.Option)
}

func TestReconcileWrapsPlainErrors(t *testing.T) {
	sentinel := errors.New("disk full")
	registry := NewRegistry()
	registry.MustRegister("broken", func(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
		return nil, sentinel
	})

	_, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "broken")
}

func TestReconcileDeduplicatesManifest(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("a", noopGenerator("shared.txt", "a.txt"))
	registry.MustRegister("b", noopGenerator("shared.txt", "b.txt"))

	manifest, err := NewReconciler(registry, testLogger(t)).
		Reconcile(context.Background(), t.TempDir(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"shared.txt", "a.txt", "b.txt"}, manifest)
}
