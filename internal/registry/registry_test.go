package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, ok := ParseVersion("1.16.5")
	require.True(t, ok)
	assert.Equal(t, Version1_16_5, v)

	// "1.16" and "1.16.1" are distinct tags even though "1.16" is a prefix
	// of the others; lookup is by exact string, not prefix.
	v, ok = ParseVersion("1.16")
	require.True(t, ok)
	assert.Equal(t, Version1_16, v)

	_, ok = ParseVersion("99.99")
	assert.False(t, ok)
}

func TestVersionStringRoundTrip(t *testing.T) {
	for _, s := range ListVersions() {
		v, ok := ParseVersion(s)
		require.True(t, ok)
		assert.Equal(t, s, VersionString(v))
	}
}

func TestAtLeast(t *testing.T) {
	assert.True(t, AtLeast(Version1_16_5, Version1_16))
	assert.False(t, AtLeast(Version1_15, Version1_16))
	assert.True(t, AtLeast(Version1_21, Version1_20_6))
}

func TestParseStructure(t *testing.T) {
	s, ok := ParseStructure("bastion")
	require.True(t, ok)
	assert.Equal(t, StructureBastion, s)

	_, ok = ParseStructure("not_a_structure")
	assert.False(t, ok)
}

func TestListStructuresCount(t *testing.T) {
	assert.Len(t, ListStructures(), 19)
}

func TestParseBiome(t *testing.T) {
	id, ok := ParseBiome("plains")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = ParseBiome("not_a_biome")
	assert.False(t, ok)
}

func TestBiomeNameRoundTrip(t *testing.T) {
	for _, name := range ListBiomes() {
		id, ok := ParseBiome(name)
		require.True(t, ok)
		assert.Equal(t, name, BiomeName(id))
	}
}
