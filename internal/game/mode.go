package game

import "github.com/talgya/driftline/internal/geom"

// Mode is the active game mode. Exactly one variant is live at a
// time and it alone decides which update path runs each turn.
type Mode interface {
	isMode()
}

// Exploring is free movement around the map.
type Exploring struct{}

// Aiming selects a cast target; movement input shifts Target instead
// of the player.
type Aiming struct {
	Target geom.Point
}

// Fishing waits out the cast, then runs the tension fight. Wait is
// the remaining cast-animation countdown.
type Fishing struct {
	Wait int
}

// Ended is terminal: the run is over with a final score.
type Ended struct {
	Score int
}

func (Exploring) isMode() {}
func (Aiming) isMode()    {}
func (Fishing) isMode()   {}
func (Ended) isMode()     {}
