// Package oracle defines the capability surface the engine consults to
// reason about a world's generated content: where a structure's candidate
// position falls in a region, whether that position is actually viable, and
// which biome occupies a given cell. The real cubiomes-style world
// generator this mirrors is treated as an external, opaque collaborator
// (its internal terrain algorithms are out of scope); this package only
// fixes the interface, plus a deterministic SyntheticOracle implementation
// that exercises every branch of that interface without a cgo dependency.
package oracle

import "seedscan/internal/registry"

// Dimension is one of the three worlds a seed generates.
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	End
)

// StructureConfig describes how a structure tag places candidates for a
// given version.
type StructureConfig struct {
	RegionSizeChunks int
	Dimension        Dimension
}

// Pos is a block-coordinate position in a dimension.
type Pos struct {
	X, Z int64
}

// Generator is per-worker, opaque state. It must never be shared across
// goroutines: callers allocate one per worker and repoint it to a
// (dimension, seed) pair before each geometry/biome query via
// Oracle.ConfigureGenerator.
type Generator struct {
	version   registry.Version
	dimension Dimension
	seed      int64
	noise     noiseField
}

// Oracle is the capability surface the predicate evaluator (internal/engine)
// consults. Every method except ConfigureGenerator is a pure function of its
// arguments (ConfigureGenerator mutates the caller-owned Generator).
type Oracle interface {
	// NewGenerator allocates a worker-owned Generator configured at
	// (version, seed 0), mirroring setupGenerator in the reference engine.
	NewGenerator(version registry.Version) *Generator

	// ConfigureGenerator repoints gen to (dimension, seed).
	ConfigureGenerator(gen *Generator, dim Dimension, seed int64)

	// StructureConfig resolves per-(tag, version) placement parameters.
	// The second return is false when the structure is not available for
	// that version.
	StructureConfig(tag registry.Structure, version registry.Version) (StructureConfig, bool)

	// StructurePosition returns the deterministic candidate position for
	// (tag, version, seed) in region (rx, rz), or false if that region
	// carries no candidate.
	StructurePosition(tag registry.Structure, version registry.Version, seed int64, rx, rz int) (Pos, bool)

	// ViableStructurePosition tests whether local terrain at (x, z) can
	// actually host the structure. gen must already be configured for the
	// seed in question.
	ViableStructurePosition(gen *Generator, tag registry.Structure, x, z int64) bool

	// BiomeAt samples the biome id at (x, y, z) under the given scale.
	// gen must already be configured for the dimension/seed being sampled.
	BiomeAt(gen *Generator, scale int, x, y, z int64) int
}
