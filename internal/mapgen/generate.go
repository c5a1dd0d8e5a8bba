// Package mapgen generates the game map from a seeded coherent-noise
// field. Same seed and dimensions always produce an identical map.
package mapgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/driftline/internal/geom"
)

// Noise thresholds partitioning cells into tile kinds. Values below
// deepThreshold are deep water, below shoreThreshold shallow water,
// everything else land.
const (
	frequency      = 0.08
	deepThreshold  = -0.2
	shoreThreshold = 0.0
)

// Generate builds a map of the given dimensions. It is a total
// function of its inputs: generation cannot fail.
func Generate(seed int64, width, height int) *Map {
	noise := opensimplex.New(seed)
	m := NewMap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Eval2(float64(x)*frequency, float64(y)*frequency)

			var kind Tile
			switch {
			case v < deepThreshold:
				kind = TileDeep
			case v < shoreThreshold:
				kind = TileShallow
			default:
				kind = TileLand
			}

			idx := m.Index(geom.Pt(x, y))
			m.Tiles[idx] = kind

			// Depth in meters scales with how far below the
			// waterline the noise value sits.
			if kind != TileLand {
				depth := int(math.Round(-v * 100))
				if depth < 0 {
					depth = 0
				}
				m.Depths[idx] = depth
			}
		}
	}

	return m
}
