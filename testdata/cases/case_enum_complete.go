package cases

type Biome int

const (
	Tundra Biome = iota
	Savanna
	Desert
)

func classifyBiome(b Biome) string {
	switch b {
	case Tundra:
		return "tundra"
	case Savanna:
		return "savanna"
	case Desert:
		return "desert"
	}
	return "unreachable"
}
