package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedscan/internal/engine"
	"seedscan/internal/oracle"
)

func ptr(v int64) *int64 { return &v }

func validRequest() WireRequest {
	return WireRequest{
		Version:    "1.21",
		SeedStart:  ptr(0),
		SeedEnd:    ptr(1000),
		MaxResults: 5,
		Structures: []WireStructureQuery{
			{Type: "village", MaxDistance: 1000},
		},
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	o := oracle.NewSyntheticOracle()
	req, err := Validate(o, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.SeedStart)
	assert.Equal(t, int64(1000), req.SeedEnd)
	assert.Equal(t, 5, req.MaxResults)
	assert.Len(t, req.Structures, 1)
}

func TestValidateUnknownVersion(t *testing.T) {
	w := validRequest()
	w.Version = "1.99"
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestValidateMissingSeedStart(t *testing.T) {
	w := validRequest()
	w.SeedStart = nil
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrMissingSeedStart)
}

func TestValidateMissingSeedEnd(t *testing.T) {
	w := validRequest()
	w.SeedEnd = nil
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrMissingSeedEnd)
}

func TestValidateSeedRangeInverted(t *testing.T) {
	w := validRequest()
	w.SeedStart = ptr(100)
	w.SeedEnd = ptr(99)
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrSeedRangeInverted)
}

func TestValidateSeedRangeTooLarge(t *testing.T) {
	w := validRequest()
	w.SeedStart = ptr(0)
	w.SeedEnd = ptr(engine.MaxRangeSpan + 1)
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrSeedRangeTooLarge)
}

func TestValidateSeedRangeExactlyAtLimitAccepted(t *testing.T) {
	w := validRequest()
	w.SeedStart = ptr(0)
	w.SeedEnd = ptr(engine.MaxRangeSpan)
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.NoError(t, err)
}

func TestValidateMissingMaxResults(t *testing.T) {
	w := validRequest()
	w.MaxResults = 0
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrInvalidMaxResults)
}

func TestValidateMaxResultsClamped(t *testing.T) {
	w := validRequest()
	w.MaxResults = 99
	req, err := Validate(oracle.NewSyntheticOracle(), w)
	require.NoError(t, err)
	assert.Equal(t, engine.MaxResults, req.MaxResults)
}

func TestValidateMissingStructures(t *testing.T) {
	w := validRequest()
	w.Structures = nil
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrMissingStructures)
}

func TestValidateEmptyStructures(t *testing.T) {
	w := validRequest()
	w.Structures = []WireStructureQuery{}
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrEmptyStructures)
}

func TestValidateStructuresCappedAt16(t *testing.T) {
	w := validRequest()
	w.Structures = make([]WireStructureQuery, 20)
	for i := range w.Structures {
		w.Structures[i] = WireStructureQuery{Type: "village", MaxDistance: 100}
	}
	req, err := Validate(oracle.NewSyntheticOracle(), w)
	require.NoError(t, err)
	assert.Len(t, req.Structures, engine.MaxStructureQueries)
}

func TestValidateUnknownStructureType(t *testing.T) {
	w := validRequest()
	w.Structures = []WireStructureQuery{{Type: "not_a_structure", MaxDistance: 100}}
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrUnknownStructureType)
}

func TestValidateNonPositiveMaxDistance(t *testing.T) {
	w := validRequest()
	w.Structures = []WireStructureQuery{{Type: "village", MaxDistance: 0}}
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrNonPositiveDistance)
}

func TestValidateStructureUnavailableForVersion(t *testing.T) {
	w := validRequest()
	w.Version = "1.15"
	w.Structures = []WireStructureQuery{{Type: "bastion", MaxDistance: 500}}
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrStructureUnavailable)
}

func TestValidateUnknownBiome(t *testing.T) {
	w := validRequest()
	w.Structures = []WireStructureQuery{{Type: "village", MaxDistance: 1000, Biome: "not_a_biome"}}
	_, err := Validate(oracle.NewSyntheticOracle(), w)
	assert.ErrorIs(t, err, ErrUnknownBiome)
}

func TestValidateKnownBiomeAccepted(t *testing.T) {
	w := validRequest()
	w.Structures = []WireStructureQuery{{Type: "village", MaxDistance: 1000, Biome: "plains"}}
	req, err := Validate(oracle.NewSyntheticOracle(), w)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Structures[0].Biome)
}
