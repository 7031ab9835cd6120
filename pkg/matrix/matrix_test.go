package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repokeeper/repokeeper/pkg/engine"
)

func TestTox(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     []string
	}{
		{
			name:     "single version",
			versions: []string{"3.8"},
			want:     []string{"3.8"},
		},
		{
			name:     "concrete versions keep input order",
			versions: []string{"3.6", "3.7", "3.8"},
			want:     []string{"3.6", "3.7", "3.8"},
		},
		{
			name:     "trailing pre-release stays last",
			versions: []string{"3.6", "3.7", "3.8", "3.9-dev"},
			want:     []string{"3.6", "3.7", "3.8", "3.9-dev"},
		},
		{
			name:     "concrete sorts before its own pre-release",
			versions: []string{"3.9-dev", "3.9"},
			want:     []string{"3.9", "3.9-dev"},
		},
		{
			name:     "pairing drops neither entry",
			versions: []string{"3.8", "3.9", "3.9-dev"},
			want:     []string{"3.8", "3.9", "3.9-dev"},
		},
		{
			name:     "duplicates are removed",
			versions: []string{"3.8", "3.8", "3.9-dev", "3.9-dev"},
			want:     []string{"3.8", "3.9-dev"},
		},
		{
			name:     "all pre-release input survives",
			versions: []string{"3.9-dev", "3.10-dev"},
			want:     []string{"3.9-dev", "3.10-dev"},
		},
		{
			name:     "rc suffix accepted",
			versions: []string{"3.8", "3.9-rc1"},
			want:     []string{"3.8", "3.9-rc1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tox(tt.versions)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToxRejectsUnknownSuffix(t *testing.T) {
	tests := []string{"3.9-nightly", "3.9-", "3", "py36", "3.9dev"}

	for _, version := range tests {
		t.Run(version, func(t *testing.T) {
			_, err := Tox([]string{version})
			require.Error(t, err)
			assert.True(t, engine.IsConfiguration(err))

			var cerr *engine.Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "python_versions", cerr.Option)
		})
	}
}

func TestToxIsDeterministic(t *testing.T) {
	versions := []string{"3.6", "3.9-dev", "3.9", "3.7"}

	first, err := Tox(versions)
	require.NoError(t, err)
	second, err := Tox(versions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTravisSubset(t *testing.T) {
	all := []string{"3.6", "3.7", "3.9-dev"}
	tox, err := Tox(all)
	require.NoError(t, err)

	// Travis carries pre-release images, nothing is filtered.
	assert.Equal(t, []string{"3.6", "3.7", "3.9-dev"}, TravisSubset(all, tox))
}

func TestActionsMatrix(t *testing.T) {
	t.Run("drops pre-releases", func(t *testing.T) {
		all := []string{"3.6", "3.7", "3.9-dev"}
		tox, err := Tox(all)
		require.NoError(t, err)

		assert.Equal(t, []string{"3.6", "3.7"}, ActionsMatrix(all, tox))
	})

	t.Run("never empty for all-pre-release input", func(t *testing.T) {
		all := []string{"3.9-dev", "3.10-dev"}
		tox, err := Tox(all)
		require.NoError(t, err)

		got := ActionsMatrix(all, tox)
		require.NotEmpty(t, got)
		assert.Equal(t, []string{"3.9-dev", "3.10-dev"}, got)
	})
}

func TestToxEnv(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"3.6", "py36"},
		{"3.10", "py310"},
		{"3.9-dev", "py39-dev"},
		{"3.9-rc1", "py39-rc1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToxEnv(tt.version))
	}
}

func TestToxEnvs(t *testing.T) {
	assert.Equal(t,
		[]string{"py36", "py39-dev"},
		ToxEnvs([]string{"3.6", "3.9-dev"}))
}
