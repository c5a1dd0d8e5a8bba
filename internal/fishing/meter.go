// Package fishing implements the catch mini-game: a tension meter
// pitted against a hooked fish's fight style.
package fishing

import (
	"math"

	"github.com/talgya/driftline/internal/data"
	"github.com/talgya/driftline/internal/mapgen"
)

const (
	baseMaxTension = 100
	baseDuration   = 5
	reelPower      = 10
	slackThreshold = 5
)

// Outcome is the result of one meter update.
type Outcome uint8

const (
	// Ongoing means the fight continues.
	Ongoing Outcome = iota
	// Success means the fish was landed.
	Success
	// Broken means tension exceeded the line's capacity.
	Broken
	// Lost means the line went slack and the fish escaped.
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "Ongoing"
	case Success:
		return "Success"
	case Broken:
		return "Broken"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Meter tracks line tension for a single catch attempt.
type Meter struct {
	Tension    int
	MaxTension int
	Duration   int
	Strength   int
	Style      data.FightStyle
	ReelFactor float64
}

// NewMeter starts a fight against a fish of the given strength and
// style. The caller adds any rod bonus to MaxTension.
func NewMeter(strength int, style data.FightStyle, reelFactor float64) *Meter {
	return &Meter{
		MaxTension: baseMaxTension,
		Duration:   baseDuration,
		Strength:   strength,
		Style:      style,
		ReelFactor: reelFactor,
	}
}

// Update advances the fight one turn. Reeling relieves tension; when
// slack, the fish pulls according to its fight style. Resolution
// priority is Broken, then Lost, then Success: one update reports
// exactly one outcome.
func (m *Meter) Update(reel bool) Outcome {
	prev := m.Tension

	if reel {
		m.Tension -= int(math.Round(reelPower * m.ReelFactor))
		if m.Tension < 0 {
			m.Tension = 0
		}
	} else {
		switch m.Style {
		case data.FightAggressive:
			m.Tension += m.Strength * 2
		case data.FightEndurance:
			if m.Duration > 2 {
				m.Tension += m.Strength
			} else {
				m.Tension += m.Strength / 2
			}
		case data.FightEvasive:
			if m.Tension <= slackThreshold {
				m.Tension = 0
			} else {
				m.Tension += m.Strength
			}
		}
	}

	m.Duration--

	switch {
	case m.Tension >= m.MaxTension:
		return Broken
	case prev > 0 && m.Tension == 0:
		return Lost
	case m.Duration <= 0:
		return Success
	default:
		return Ongoing
	}
}

// BiteProbability is the per-turn chance that waiting on a cast hooks
// a fish, from the target tile's depth class and the equipped bait.
func BiteProbability(tile mapgen.Tile, baitBonus float64) float64 {
	p := 0.3 + baitBonus
	switch tile {
	case mapgen.TileShallow:
		p += 0.1
	case mapgen.TileDeep:
		p += 0.3
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
