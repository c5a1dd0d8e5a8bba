package mapgen

import (
	"fmt"

	"github.com/talgya/driftline/internal/geom"
)

// Tile classifies one grid cell's terrain.
type Tile uint8

const (
	TileLand Tile = iota
	TileShallow
	TileDeep
)

// IsWater reports whether fish can occupy the tile.
func (t Tile) IsWater() bool {
	return t == TileShallow || t == TileDeep
}

// TileName returns a human-readable name for a tile kind.
func TileName(t Tile) string {
	switch t {
	case TileLand:
		return "Land"
	case TileShallow:
		return "ShallowWater"
	case TileDeep:
		return "DeepWater"
	default:
		return "Unknown"
	}
}

// Map holds the generated terrain: a row-major tile grid and a
// parallel depth field in meters. Depth is 0 on land and positive on
// water.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
	Depths []int
}

// NewMap creates a map of the given dimensions filled with land.
func NewMap(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
		Depths: make([]int, width*height),
	}
}

// Index returns the flat array index for a point.
func (m *Map) Index(p geom.Point) int {
	return p.Y*m.Width + p.X
}

// TileAt returns the tile at p.
func (m *Map) TileAt(p geom.Point) Tile {
	return m.Tiles[m.Index(p)]
}

// Depth returns the depth in meters at p.
func (m *Map) Depth(p geom.Point) int {
	return m.Depths[m.Index(p)]
}

// InBounds reports whether p lies inside the map.
func (m *Map) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// IsWater reports whether p is a water tile.
func (m *Map) IsWater(p geom.Point) bool {
	return m.TileAt(p).IsWater()
}

// Center returns the map's center point.
func (m *Map) Center() geom.Point {
	return geom.Pt(m.Width/2, m.Height/2)
}

// WaterTiles returns the coordinates of every water tile.
func (m *Map) WaterTiles() []geom.Point {
	var water []geom.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := geom.Pt(x, y)
			if m.IsWater(p) {
				water = append(water, p)
			}
		}
	}
	return water
}

// TileCounts returns a summary of tile kind distribution.
func (m *Map) TileCounts() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range m.Tiles {
		counts[t]++
	}
	return counts
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d)", m.Width, m.Height)
}
