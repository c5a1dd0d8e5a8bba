// Population spawning — places fish onto water tiles weighted by
// species rarity and constrained by per-species depth range.
package ecology

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/talgya/driftline/internal/data"
	"github.com/talgya/driftline/internal/geom"
	"github.com/talgya/driftline/internal/mapgen"
)

// ErrNoWater is returned when a map offers no water tile to spawn on.
var ErrNoWater = errors.New("no water tiles to spawn on")

// Fish is a live entity: a species reference plus a mutable position.
type Fish struct {
	Species data.FishSpecies
	Pos     geom.Point
}

// attemptsPerFish caps how many sampling attempts each requested fish
// gets before the spawner gives up on it. Tight depth constraints can
// therefore under-fill the requested count; that is deliberate.
const attemptsPerFish = 10

// SpawnPopulation places up to count fish on the map's water tiles.
// Each attempt samples a species by rarity weight, then picks a water
// tile whose depth suits that species; the chosen tile is removed from
// the candidate pool. An attempt that finds no suitable tile consumes
// nothing. Fails only when the map has no water at all.
func SpawnPopulation(m *mapgen.Map, species []data.FishSpecies, count int, rng *rand.Rand) ([]*Fish, error) {
	water := m.WaterTiles()
	if len(water) == 0 {
		return nil, ErrNoWater
	}

	totalWeight := 0.0
	for _, sp := range species {
		totalWeight += sp.Rarity
	}

	fish := make([]*Fish, 0, count)
	maxAttempts := count * attemptsPerFish

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if len(fish) >= count || len(water) == 0 {
			break
		}

		sp := sampleSpecies(species, totalWeight, rng)

		// Tiles whose depth suits this species.
		var candidates []int
		for i, p := range water {
			d := m.Depth(p)
			if d >= sp.MinDepth && d <= sp.MaxDepth {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[rng.Intn(len(candidates))]
		pos := water[pick]

		// Swap-remove: spawn order does not matter, tile reuse does.
		water[pick] = water[len(water)-1]
		water = water[:len(water)-1]

		fish = append(fish, &Fish{Species: sp, Pos: pos})
	}

	if len(fish) < count {
		slog.Debug("population under-filled",
			"requested", count,
			"spawned", len(fish),
			"water_remaining", len(water),
		)
	}

	return fish, nil
}

// sampleSpecies draws one species with probability proportional to its
// rarity weight.
func sampleSpecies(species []data.FishSpecies, totalWeight float64, rng *rand.Rand) data.FishSpecies {
	roll := rng.Float64() * totalWeight
	acc := 0.0
	for _, sp := range species {
		acc += sp.Rarity
		if roll < acc {
			return sp
		}
	}
	return species[len(species)-1]
}
