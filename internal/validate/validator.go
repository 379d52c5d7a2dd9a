// Package validate normalises and bounds-checks a parsed search request
// before it reaches the engine's coordinator.
package validate

import (
	"errors"

	"seedscan/internal/engine"
	"seedscan/internal/oracle"
	"seedscan/internal/registry"
)

// WireStructureQuery is the JSON shape of one structure requirement.
type WireStructureQuery struct {
	Type        string `json:"type"`
	MaxDistance int64  `json:"max_distance"`
	Biome       string `json:"biome,omitempty"`
}

// WireRequest is the JSON shape of a search request at the service
// boundary (HTTP body or the single WebSocket request frame).
type WireRequest struct {
	Version    string               `json:"version"`
	SeedStart  *int64               `json:"seed_start"`
	SeedEnd    *int64               `json:"seed_end"`
	MaxResults int                  `json:"max_results"`
	Structures []WireStructureQuery `json:"structures"`
}

var (
	ErrUnknownVersion       = errors.New("unknown version string")
	ErrMissingSeedStart     = errors.New("missing seed_start")
	ErrMissingSeedEnd       = errors.New("missing seed_end")
	ErrSeedRangeInverted    = errors.New("seed_end must be >= seed_start")
	ErrSeedRangeTooLarge    = errors.New("seed range must not exceed 1 billion")
	ErrInvalidMaxResults    = errors.New("missing or invalid max_results")
	ErrMissingStructures    = errors.New("missing structures")
	ErrEmptyStructures      = errors.New("structures array is empty")
	ErrUnknownStructureType = errors.New("unknown structure type")
	ErrNonPositiveDistance  = errors.New("max_distance must be positive")
	ErrStructureUnavailable = errors.New("structure type not available in requested version")
	ErrUnknownBiome         = errors.New("unknown biome name")
)

// Validate converts a wire request into an immutable engine.Request,
// returning one of the sentinel errors above on the first rule violated.
// o is consulted for the "structure not available in this version" rule,
// since availability is the oracle's call, not the registry's.
func Validate(o oracle.Oracle, w WireRequest) (engine.Request, error) {
	version, ok := registry.ParseVersion(w.Version)
	if !ok {
		return engine.Request{}, ErrUnknownVersion
	}

	if w.SeedStart == nil {
		return engine.Request{}, ErrMissingSeedStart
	}
	if w.SeedEnd == nil {
		return engine.Request{}, ErrMissingSeedEnd
	}
	seedStart, seedEnd := *w.SeedStart, *w.SeedEnd

	if seedEnd < seedStart {
		return engine.Request{}, ErrSeedRangeInverted
	}
	if seedEnd-seedStart > engine.MaxRangeSpan {
		return engine.Request{}, ErrSeedRangeTooLarge
	}

	if w.MaxResults <= 0 {
		return engine.Request{}, ErrInvalidMaxResults
	}
	maxResults := w.MaxResults
	if maxResults > engine.MaxResults {
		maxResults = engine.MaxResults
	}

	if w.Structures == nil {
		return engine.Request{}, ErrMissingStructures
	}
	if len(w.Structures) == 0 {
		return engine.Request{}, ErrEmptyStructures
	}

	wireStructures := w.Structures
	if len(wireStructures) > engine.MaxStructureQueries {
		wireStructures = wireStructures[:engine.MaxStructureQueries]
	}

	structures := make([]engine.StructureQuery, 0, len(wireStructures))
	for _, ws := range wireStructures {
		tag, ok := registry.ParseStructure(ws.Type)
		if !ok {
			return engine.Request{}, ErrUnknownStructureType
		}

		if ws.MaxDistance <= 0 {
			return engine.Request{}, ErrNonPositiveDistance
		}

		if _, ok := o.StructureConfig(tag, version); !ok {
			return engine.Request{}, ErrStructureUnavailable
		}

		biome := registry.NoBiomeFilter
		if ws.Biome != "" {
			id, ok := registry.ParseBiome(ws.Biome)
			if !ok {
				return engine.Request{}, ErrUnknownBiome
			}
			biome = id
		}

		structures = append(structures, engine.StructureQuery{
			Tag:         tag,
			MaxDistance: ws.MaxDistance,
			Biome:       biome,
		})
	}

	return engine.Request{
		Version:    version,
		SeedStart:  seedStart,
		SeedEnd:    seedEnd,
		MaxResults: maxResults,
		Structures: structures,
	}, nil
}
