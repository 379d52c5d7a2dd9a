// Package registry holds the closed-set, process-lifetime name tables the
// engine and the HTTP surface both consult: Minecraft version strings,
// structure type names, and biome names. All three are populated once at
// package init and never mutated afterward.
package registry

// Version identifies a Minecraft Java Edition release the engine knows how
// to reason about. The zero value is VersionUndefined.
type Version int

const (
	VersionUndefined Version = iota
	Version1_0
	Version1_1
	Version1_2
	Version1_3
	Version1_4
	Version1_5
	Version1_6
	Version1_7
	Version1_8
	Version1_9
	Version1_10
	Version1_11
	Version1_12
	Version1_13
	Version1_14
	Version1_15
	Version1_16_1
	Version1_16_5
	Version1_16
	Version1_17
	Version1_17_1
	Version1_18
	Version1_18_2
	Version1_19
	Version1_19_2
	Version1_19_4
	Version1_20
	Version1_20_6
	Version1_21
)

// versionEntry pairs a wire string with its Version tag. Declaration order
// matters for enumeration (ListVersions reports in this order) even though
// ParseVersion does an exact match.
var versionEntries = []struct {
	str string
	tag Version
}{
	{"1.0", Version1_0},
	{"1.1", Version1_1},
	{"1.2", Version1_2},
	{"1.3", Version1_3},
	{"1.4", Version1_4},
	{"1.5", Version1_5},
	{"1.6", Version1_6},
	{"1.7", Version1_7},
	{"1.8", Version1_8},
	{"1.9", Version1_9},
	{"1.10", Version1_10},
	{"1.11", Version1_11},
	{"1.12", Version1_12},
	{"1.13", Version1_13},
	{"1.14", Version1_14},
	{"1.15", Version1_15},
	{"1.16.1", Version1_16_1},
	{"1.16.5", Version1_16_5},
	{"1.16", Version1_16},
	{"1.17", Version1_17},
	{"1.17.1", Version1_17_1},
	{"1.18", Version1_18},
	{"1.18.2", Version1_18_2},
	{"1.19", Version1_19},
	{"1.19.2", Version1_19_2},
	{"1.19.4", Version1_19_4},
	{"1.20", Version1_20},
	{"1.20.6", Version1_20_6},
	{"1.21", Version1_21},
}

var (
	versionByString map[string]Version
	versionStrings  map[Version]string
	versionOrder    []string
)

func init() {
	versionByString = make(map[string]Version, len(versionEntries))
	versionStrings = make(map[Version]string, len(versionEntries))
	versionOrder = make([]string, 0, len(versionEntries))
	for _, e := range versionEntries {
		versionByString[e.str] = e.tag
		versionStrings[e.tag] = e.str
		versionOrder = append(versionOrder, e.str)
	}
}

// ParseVersion resolves a wire version string to its tag. It returns
// VersionUndefined, false when the string is not in the registry.
func ParseVersion(s string) (Version, bool) {
	v, ok := versionByString[s]
	return v, ok
}

// VersionString returns the canonical wire string for a version tag.
func VersionString(v Version) string {
	return versionStrings[v]
}

// ListVersions returns every known version string in registry declaration
// order.
func ListVersions() []string {
	out := make([]string, len(versionOrder))
	copy(out, versionOrder)
	return out
}

// chronological lists version tags in actual Minecraft release order, which
// does not match the declaration order above ("1.16.1" and "1.16.5" are
// declared before "1.16"). Structure availability floors
// (SyntheticOracle.StructureConfig via AtLeast) compare against this order,
// not against the Version int values.
var chronological = []Version{
	Version1_0, Version1_1, Version1_2, Version1_3, Version1_4, Version1_5,
	Version1_6, Version1_7, Version1_8, Version1_9, Version1_10, Version1_11,
	Version1_12, Version1_13, Version1_14, Version1_15,
	Version1_16, Version1_16_1, Version1_16_5,
	Version1_17, Version1_17_1,
	Version1_18, Version1_18_2,
	Version1_19, Version1_19_2, Version1_19_4,
	Version1_20, Version1_20_6,
	Version1_21,
}

var releaseRank map[Version]int

func init() {
	releaseRank = make(map[Version]int, len(chronological))
	for i, v := range chronological {
		releaseRank[v] = i
	}
}

// ReleaseRank returns the chronological release index of a version tag
// (0 = earliest). It returns -1 for VersionUndefined or any unknown tag, so
// callers comparing against it should treat -1 as "always before everything".
func ReleaseRank(v Version) int {
	if r, ok := releaseRank[v]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether version v was released at or after floor.
func AtLeast(v, floor Version) bool {
	return ReleaseRank(v) >= ReleaseRank(floor)
}
