package game

import (
	"github.com/talgya/driftline/internal/data"
	"github.com/talgya/driftline/internal/geom"
)

// Gameplay constants.
const (
	MaxHP          = 10
	MaxHunger      = 100
	MaxLine        = 100
	LineDamage     = 10
	HazardDamage   = 1
	HazardDuration = 3
	stormChance    = 5  // percent per deep-water turn
	landChance     = 10 // percent per land turn
	castWait       = 2

	eatRawFish    = 20
	eatCookedFish = 40
	eatCannedFood = 60
	cookHPRestore = 2
)

// Slot holds at most one equipped gear item.
type Slot struct {
	item *data.GearItem
}

// Equip places it in the slot and returns the displaced item, if any.
func (s *Slot) Equip(it data.GearItem) (data.GearItem, bool) {
	old := s.item
	copied := it
	s.item = &copied
	if old == nil {
		return data.GearItem{}, false
	}
	return *old, true
}

// Item returns the equipped item, or nil.
func (s *Slot) Item() *data.GearItem {
	return s.item
}

// Player is the run's protagonist: position, vitals, line, gear
// bonuses and carried goods.
type Player struct {
	Pos    geom.Point
	HP     int
	Hunger int
	Line   int

	BaitBonus    float64
	TensionBonus int
	ReelFactor   float64

	CannedFood int
	Inventory  []data.FishSpecies // caught fish, raw
	Items      []data.GearItem    // unequipped gear and consumables

	Rod  Slot
	Reel Slot
	Lure Slot
}

// Hazard is a transient entity that damages the player on contact.
type Hazard struct {
	Pos   geom.Point
	Turns int
}

// newPlayer outfits a player from the gear list: the first rod, reel
// and lure are equipped, everything else goes into the item list.
func newPlayer(pos geom.Point, gear []data.GearItem) Player {
	p := Player{
		Pos:        pos,
		HP:         MaxHP,
		Hunger:     MaxHunger,
		Line:       MaxLine,
		ReelFactor: 1.0,
	}
	for _, it := range gear {
		switch {
		case it.Kind == data.GearRod && p.Rod.Item() == nil:
			p.Rod.Equip(it)
			p.TensionBonus = it.TensionBonus
		case it.Kind == data.GearReel && p.Reel.Item() == nil:
			p.Reel.Equip(it)
			p.ReelFactor = it.ReelFactor
		case it.Kind == data.GearLure && p.Lure.Item() == nil:
			p.Lure.Equip(it)
			p.BaitBonus = it.BiteBonus
		default:
			p.Items = append(p.Items, it)
		}
	}
	return p
}
