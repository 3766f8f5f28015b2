package level

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevels returns the hardcoded fallback campaign, used when even the
// embedded YAML cannot be parsed.
func DefaultLevels() []Config {
	return []Config{
		{
			ID:            1,
			TimeLimit:     30,
			GoodRequired:  5,
			DecoyTotal:    10,
			MaxGoodSpawns: 8,
			SpawnInterval: 1.0,
			DecoyPenalty:  3,
			DuckLifetime:  4,
			Sizes:         SizeWeights{Large: 0.5, Medium: 0.3, Small: 0.2},
		},
		{
			ID:            2,
			TimeLimit:     30,
			GoodRequired:  7,
			DecoyTotal:    12,
			MaxGoodSpawns: 11,
			SpawnInterval: 0.9,
			DecoyPenalty:  3,
			DuckLifetime:  3.5,
			Sizes:         SizeWeights{Large: 0.4, Medium: 0.35, Small: 0.25},
		},
		{
			ID:            3,
			TimeLimit:     25,
			GoodRequired:  8,
			DecoyTotal:    14,
			MaxGoodSpawns: 12,
			SpawnInterval: 0.8,
			DecoyPenalty:  4,
			DuckLifetime:  3,
			Sizes:         SizeWeights{Large: 0.35, Medium: 0.35, Small: 0.3},
		},
	}
}
