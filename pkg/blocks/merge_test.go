package blocks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeReplacesOnlyTheBracketedRegion(t *testing.T) {
	original := "Some hand-written introduction.\n\n" +
		".. start shields\n(old)\n.. end shields\n\n" +
		"A hand-written conclusion.\n"

	newBody := ".. start shields\n(new)\n.. end shields"

	merged, found := Merge(original, StartMarker("shields"), EndMarker("shields"), newBody)
	require.True(t, found)

	assert.True(t, strings.HasPrefix(merged, "Some hand-written introduction.\n\n"))
	assert.True(t, strings.HasSuffix(merged, "\n\nA hand-written conclusion.\n"))
	assert.Contains(t, merged, "(new)")
	assert.NotContains(t, merged, "(old)")
}

func TestMergeIsIdempotent(t *testing.T) {
	original := "before\n.. start links\nstale\n.. end links\nafter\n"
	newBody := ".. start links\nfresh\n.. end links"

	once, found := Merge(original, StartMarker("links"), EndMarker("links"), newBody)
	require.True(t, found)

	twice, found := Merge(once, StartMarker("links"), EndMarker("links"), newBody)
	require.True(t, found)

	assert.Equal(t, once, twice)
}

func TestMergeStopsAtFirstEndMarker(t *testing.T) {
	// Two pairs of the same kind: first match wins, the second pair is
	// left untouched.
	original := ".. start shields\none\n.. end shields\n" +
		".. start shields\ntwo\n.. end shields\n"

	merged, found := Merge(original, StartMarker("shields"), EndMarker("shields"),
		".. start shields\nreplaced\n.. end shields")
	require.True(t, found)

	assert.Contains(t, merged, "replaced")
	assert.NotContains(t, merged, "one")
	assert.Contains(t, merged, "two")
}

func TestMergeReportsMissingPair(t *testing.T) {
	original := "no markers here\n"

	merged, found := Merge(original, StartMarker("shields"), EndMarker("shields"), "body")

	assert.False(t, found)
	assert.Equal(t, original, merged)
}

func TestMergeIndependentBlocksDoNotInterfere(t *testing.T) {
	original := ".. start short_desc\nd\n.. end short_desc\n\n" +
		".. start shields\ns\n.. end shields\n\n" +
		".. start installation\ni\n.. end installation\n\n" +
		".. start links\nl\n.. end links\n"

	merged, found := MergeRegex(original, ShieldsRegex,
		".. start shields\nS2\n.. end shields")
	require.True(t, found)

	merged, found = MergeRegex(merged, InstallationRegex,
		".. start installation\nI2\n.. end installation")
	require.True(t, found)

	assert.Contains(t, merged, ".. start short_desc\nd\n.. end short_desc")
	assert.Contains(t, merged, "S2")
	assert.Contains(t, merged, "I2")
	assert.Contains(t, merged, ".. start links\nl\n.. end links")
}

func TestMergeMatchesStartLineWithUniqueName(t *testing.T) {
	// The shields pattern is a prefix match, so a start line carrying a
	// unique name is still found.
	original := "prose\n.. start shields docs\nold\n.. end shields\nprose\n"

	merged, found := MergeRegex(original, ShieldsRegex,
		".. start shields docs\nnew\n.. end shields")
	require.True(t, found)
	assert.Contains(t, merged, "new")
	assert.NotContains(t, merged, "old")
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, ".. start installation", StartMarker("installation"))
	assert.Equal(t, ".. end installation", EndMarker("installation"))
}
