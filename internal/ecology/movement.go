// Fish movement — a biased random walk with schooling attraction,
// day/night speed scaling, and tidal drift.
package ecology

import (
	"math/rand"

	"github.com/talgya/driftline/internal/geom"
	"github.com/talgya/driftline/internal/mapgen"
	"github.com/talgya/driftline/internal/weather"
)

// schoolRadius is the Manhattan distance within which a fish is drawn
// toward the nearest member of its own species.
const schoolRadius = 8

// UpdatePopulation moves every fish one step. Fish move faster at
// night. A move is accepted only if it lands in bounds on a water
// tile; otherwise the fish stays put this turn. Cannot fail.
func UpdatePopulation(m *mapgen.Map, fish []*Fish, rng *rand.Rand, tod weather.TimeOfDay, drift geom.Point) {
	speed := 1
	if tod == weather.Night {
		speed = 2
	}

	for _, f := range fish {
		// Base step: -speed, 0 or +speed per axis, so scaling the
		// speed never shortens an otherwise identical walk.
		dx := (rng.Intn(3) - 1) * speed
		dy := (rng.Intn(3) - 1) * speed

		bias := schoolingBias(f, fish)
		dx = clampDelta(dx+bias.X, speed)
		dy = clampDelta(dy+bias.Y, speed)

		cand := f.Pos.Add(geom.Pt(dx+drift.X, dy+drift.Y)).Clamp(m.Width, m.Height)
		if m.IsWater(cand) {
			f.Pos = cand
		}
	}
}

// schoolingBias returns a unit attraction vector toward the nearest
// same-species neighbor within schoolRadius, or zero when alone.
func schoolingBias(f *Fish, fish []*Fish) geom.Point {
	nearest := -1
	bestDist := schoolRadius + 1
	for i, other := range fish {
		if other == f || other.Species.ID != f.Species.ID {
			continue
		}
		if d := f.Pos.Manhattan(other.Pos); d < bestDist {
			bestDist = d
			nearest = i
		}
	}
	if nearest < 0 {
		return geom.Point{}
	}
	target := fish[nearest].Pos
	return geom.Pt(geom.Sign(target.X-f.Pos.X), geom.Sign(target.Y-f.Pos.Y))
}

func clampDelta(d, speed int) int {
	if d > speed {
		return speed
	}
	if d < -speed {
		return -speed
	}
	return d
}
