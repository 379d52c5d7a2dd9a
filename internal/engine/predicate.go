package engine

import (
	"seedscan/internal/oracle"
	"seedscan/internal/registry"
)

// matches decides whether seed satisfies every structure query in req,
// configuring gen as it goes. gen must be owned by the calling worker; it
// is repointed to (Overworld, seed) on entry and left there on return.
func matches(o oracle.Oracle, req Request, seed int64, gen *oracle.Generator) bool {
	o.ConfigureGenerator(gen, oracle.Overworld, seed)

	for _, sq := range req.Structures {
		if !matchesQuery(o, req, seed, gen, sq) {
			return false
		}
	}
	return true
}

func matchesQuery(o oracle.Oracle, req Request, seed int64, gen *oracle.Generator, sq StructureQuery) bool {
	sconf, ok := o.StructureConfig(sq.Tag, req.Version)
	if !ok {
		return false
	}

	regionBlocks := int64(sconf.RegionSizeChunks) * 16
	maxRegion := sq.MaxDistance/regionBlocks + 2

	for rz := -maxRegion; rz <= maxRegion; rz++ {
		for rx := -maxRegion; rx <= maxRegion; rx++ {
			pos, ok := o.StructurePosition(sq.Tag, req.Version, seed, int(rx), int(rz))
			if !ok {
				continue
			}

			if pos.X*pos.X+pos.Z*pos.Z > sq.MaxDistance*sq.MaxDistance {
				continue
			}

			if !o.ViableStructurePosition(gen, sq.Tag, pos.X, pos.Z) {
				continue
			}

			if sq.Biome != registry.NoBiomeFilter {
				o.ConfigureGenerator(gen, sconf.Dimension, seed)
				biome := o.BiomeAt(gen, 4, pos.X>>2, 15, pos.Z>>2)
				o.ConfigureGenerator(gen, oracle.Overworld, seed)
				if biome != sq.Biome {
					continue
				}
			}

			return true
		}
	}
	return false
}
