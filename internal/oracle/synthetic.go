package oracle

import (
	"sync"

	"github.com/aquilax/go-perlin"

	"seedscan/internal/registry"
)

// noiseField wraps the coherent-noise generator used for both presence
// gating and biome sampling. Perlin.Noise2D/Noise3D are safe for concurrent
// read-only use once constructed (they only read the seeded permutation
// table), which is what lets the SyntheticOracle hand the same field to
// many worker goroutines.
type noiseField struct {
	p *perlin.Perlin
}

func newNoiseField(seed int64) noiseField {
	// alpha=2, beta=2, n=3 octaves: the same parameters the reference
	// terrain generator in the example pack uses for 2D coherent noise.
	return noiseField{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (n noiseField) at2D(x, z float64) float64 {
	if n.p == nil {
		return 0
	}
	return n.p.Noise2D(x, z)
}

func (n noiseField) at3D(x, y, z float64) float64 {
	if n.p == nil {
		return 0
	}
	return n.p.Noise3D(x, y, z)
}

type structureDef struct {
	regionSizeChunks int
	dimension        Dimension
	introducedAt      registry.Version
	// presenceThreshold gates how often a region carries a candidate at
	// all; viableThreshold gates how often a candidate position is
	// actually viable. Both live in Perlin's roughly [-1, 1] range.
	presenceThreshold float64
	viableThreshold   float64
}

var structureDefs = map[registry.Structure]structureDef{
	registry.StructureFeature:       {32, Overworld, registry.Version1_0, -0.6, -0.6},
	registry.StructureDesertPyramid: {32, Overworld, registry.Version1_0, -0.2, -0.3},
	registry.StructureJungleTemple:  {32, Overworld, registry.Version1_0, -0.2, -0.3},
	registry.StructureSwampHut:      {32, Overworld, registry.Version1_0, -0.2, -0.3},
	registry.StructureIgloo:         {32, Overworld, registry.Version1_0, -0.2, -0.3},
	registry.StructureVillage:       {34, Overworld, registry.Version1_0, -0.1, -0.2},
	registry.StructureOceanRuin:     {20, Overworld, registry.Version1_13, -0.2, -0.3},
	registry.StructureShipwreck:     {24, Overworld, registry.Version1_13, -0.2, -0.3},
	registry.StructureMonument:      {32, Overworld, registry.Version1_8, -0.3, -0.4},
	registry.StructureMansion:       {80, Overworld, registry.Version1_11, -0.4, -0.4},
	registry.StructureOutpost:       {32, Overworld, registry.Version1_14, -0.2, -0.3},
	registry.StructureRuinedPortal:  {40, Overworld, registry.Version1_16, -0.2, -0.3},
	registry.StructureAncientCity:   {24, Overworld, registry.Version1_19, -0.5, -0.5},
	registry.StructureTreasure:      {32, Overworld, registry.Version1_13, -0.1, -0.2},
	registry.StructureFortress:      {27, Nether, registry.Version1_0, -0.2, -0.3},
	registry.StructureBastion:       {27, Nether, registry.Version1_16, -0.2, -0.3},
	registry.StructureEndCity:       {20, End, registry.Version1_9, -0.3, -0.4},
	registry.StructureTrailRuins:    {34, Overworld, registry.Version1_20, -0.2, -0.3},
	registry.StructureTrialChambers: {34, Overworld, registry.Version1_20_6, -0.3, -0.3},
}

// mix64 is a splitmix64-style finalizer used to turn the (seed, tag,
// version, region) tuple into a well-distributed 64-bit value.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func regionHash(seed int64, tag registry.Structure, version registry.Version, rx, rz int) uint64 {
	h := mix64(uint64(seed))
	h ^= mix64(uint64(tag)*0x9E3779B97F4A7C15 + uint64(version) + 1)
	h = mix64(h ^ (uint64(uint32(rx))<<32 | uint64(uint32(rz))))
	return h
}

// SyntheticOracle is a deterministic, cgo-free stand-in for the real
// cubiomes-style world generator. It is not a byte-accurate port of
// Minecraft's terrain algorithm (that algorithm is out of scope); it exists
// to make every branch the predicate evaluator walks (absent config, absent
// candidate, out-of-range, non-viable, wrong biome) reachable and testable.
type SyntheticOracle struct {
	presenceFields sync.Map // key: seed^tag salt -> noiseField
}

// NewSyntheticOracle constructs a ready-to-use oracle.
func NewSyntheticOracle() *SyntheticOracle {
	return &SyntheticOracle{}
}

func (o *SyntheticOracle) NewGenerator(version registry.Version) *Generator {
	g := &Generator{version: version}
	o.ConfigureGenerator(g, Overworld, 0)
	return g
}

func (o *SyntheticOracle) ConfigureGenerator(gen *Generator, dim Dimension, seed int64) {
	gen.dimension = dim
	gen.seed = seed
	gen.noise = newNoiseField(seed ^ int64(dim)*0x1000193)
}

func (o *SyntheticOracle) StructureConfig(tag registry.Structure, version registry.Version) (StructureConfig, bool) {
	def, ok := structureDefs[tag]
	if !ok || !registry.AtLeast(version, def.introducedAt) {
		return StructureConfig{}, false
	}
	return StructureConfig{RegionSizeChunks: def.regionSizeChunks, Dimension: def.dimension}, true
}

func (o *SyntheticOracle) presenceField(seed int64, tag registry.Structure) noiseField {
	key := int64(mix64(uint64(seed) ^ uint64(tag)*0x9E3779B97F4A7C15))
	if v, ok := o.presenceFields.Load(key); ok {
		return v.(noiseField)
	}
	nf := newNoiseField(key)
	actual, _ := o.presenceFields.LoadOrStore(key, nf)
	return actual.(noiseField)
}

func (o *SyntheticOracle) StructurePosition(tag registry.Structure, version registry.Version, seed int64, rx, rz int) (Pos, bool) {
	def, ok := structureDefs[tag]
	if !ok || !registry.AtLeast(version, def.introducedAt) {
		return Pos{}, false
	}

	// Sample at cell centres: Perlin noise is zero at every integer lattice
	// point, which would put every region above its (negative) threshold.
	field := o.presenceField(seed, tag)
	if field.at2D(float64(rx)+0.5, float64(rz)+0.5) < def.presenceThreshold {
		return Pos{}, false
	}

	regionBlocks := int64(def.regionSizeChunks) * 16
	h := regionHash(seed, tag, version, rx, rz)
	offX := int64(h % uint64(regionBlocks))
	offZ := int64((h >> 32) % uint64(regionBlocks))

	return Pos{
		X: int64(rx)*regionBlocks + offX,
		Z: int64(rz)*regionBlocks + offZ,
	}, true
}

func (o *SyntheticOracle) ViableStructurePosition(gen *Generator, tag registry.Structure, x, z int64) bool {
	def, ok := structureDefs[tag]
	if !ok {
		return false
	}
	return gen.noise.at2D(float64(x)/64, float64(z)/64) >= def.viableThreshold
}

// biomesByDimension partitions the biome registry into per-dimension pools
// so sampling never returns, say, a nether biome for an overworld query.
var biomesByDimension = map[Dimension][]int{
	Overworld: overworldBiomeIDs(),
	Nether:    {8, 170, 171, 172, 173},
	End:       {9, 40, 41, 42, 43},
}

func overworldBiomeIDs() []int {
	exclude := map[int]bool{8: true, 170: true, 171: true, 172: true, 173: true, 9: true, 40: true, 41: true, 42: true, 43: true, 127: true}
	var ids []int
	for _, name := range registry.ListBiomes() {
		id, _ := registry.ParseBiome(name)
		if !exclude[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

func (o *SyntheticOracle) BiomeAt(gen *Generator, scale int, x, y, z int64) int {
	pool := biomesByDimension[gen.dimension]
	if len(pool) == 0 {
		return registry.NoBiomeFilter
	}
	n := gen.noise.at3D(float64(x)/float64(scale*16), float64(y)/16, float64(z)/float64(scale*16))
	// Map noise in [-1, 1] to an index into the dimension's biome pool.
	idx := int((n + 1) / 2 * float64(len(pool)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}
