package cases

type Biome int

const (
	Tundra Biome = iota
	Savanna
	Desert
)

func classifyBiome(b Biome) string {
	switch b {
	case Tundra, Savanna:
		return "known"
	}
	return "other"
}
