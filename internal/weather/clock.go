// Package weather tracks the environmental state derived from the
// turn counter: time of day, tidal drift, and storms. Everything here
// is a pure function of turns elapsed, never of wall-clock time.
package weather

import (
	"fmt"

	"github.com/talgya/driftline/internal/geom"
)

const (
	// SegmentTurns is the length of one time-of-day phase.
	SegmentTurns = 10
	// TideTurns is the period after which the tidal drift reverses.
	TideTurns = 20
	// StormTurns is how long a storm lasts once started.
	StormTurns = 5
	// DeepVisibility is the sight radius while on deep water.
	DeepVisibility = 5
	// StormVisibility is the reduced radius during a storm.
	StormVisibility = 3
)

// TimeOfDay is one phase of the four-phase day cycle.
type TimeOfDay uint8

const (
	Dawn TimeOfDay = iota
	Day
	Dusk
	Night
)

var timeNames = []string{"Dawn", "Day", "Dusk", "Night"}

func (t TimeOfDay) String() string {
	if int(t) < len(timeNames) {
		return timeNames[t]
	}
	return "Unknown"
}

// ParseTimeOfDay maps a phase name back to its value.
func ParseTimeOfDay(name string) (TimeOfDay, error) {
	for i, n := range timeNames {
		if n == name {
			return TimeOfDay(i), nil
		}
	}
	return Dawn, fmt.Errorf("invalid time_of_day %q", name)
}

// Clock holds the turn counter and storm countdown.
type Clock struct {
	Turn      int
	StormLeft int
}

// Advance moves the clock one turn forward, decrementing any active
// storm first.
func (c *Clock) Advance() {
	if c.StormLeft > 0 {
		c.StormLeft--
	}
	c.Turn++
}

// TimeOfDay derives the current phase from the turn counter.
func (c *Clock) TimeOfDay() TimeOfDay {
	return TimeOfDay((c.Turn / SegmentTurns) % len(timeNames))
}

// Drift returns the tidal current vector, alternating direction every
// TideTurns turns.
func (c *Clock) Drift() geom.Point {
	if (c.Turn/TideTurns)%2 == 0 {
		return geom.Pt(1, 0)
	}
	return geom.Pt(-1, 0)
}

// StartStorm begins a storm lasting StormTurns turns.
func (c *Clock) StartStorm() {
	c.StormLeft = StormTurns
}

// Storming reports whether a storm is active.
func (c *Clock) Storming() bool {
	return c.StormLeft > 0
}

// Visibility returns the sight radius given whether the observer is
// on deep water. Off deep water sight is unlimited.
func (c *Clock) Visibility(onDeep bool) int {
	if !onDeep {
		return int(^uint(0) >> 1)
	}
	if c.Storming() {
		return StormVisibility
	}
	return DeepVisibility
}
