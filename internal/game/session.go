// Package game drives the turn-based simulation: one Session owns the
// map, the fish population, the player, hazards, and the mode state
// machine, and advances them one discrete turn per accepted action.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/talgya/driftline/internal/data"
	"github.com/talgya/driftline/internal/ecology"
	"github.com/talgya/driftline/internal/entropy"
	"github.com/talgya/driftline/internal/fishing"
	"github.com/talgya/driftline/internal/geom"
	"github.com/talgya/driftline/internal/mapgen"
	"github.com/talgya/driftline/internal/weather"
)

// DefaultPopulation is the number of fish spawned per area.
const DefaultPopulation = 5

// CaptureLedger is the external codex collaborator. The session only
// records captures and reads the lifetime total; storage belongs to
// the ledger.
type CaptureLedger interface {
	RecordCapture(speciesID string) error
	TotalCaptures() (int, error)
}

// Config parameterizes a new session.
type Config struct {
	Seed       int64
	Difficulty Difficulty
	Species    []data.FishSpecies
	Gear       []data.GearItem
	Ledger     CaptureLedger // optional
	Population int           // fish per area; DefaultPopulation when 0
}

// Session is the complete run state. It is owned by a single caller
// and advanced synchronously, one turn per Apply.
type Session struct {
	Player  Player
	Map     *mapgen.Map
	Fishes  []*ecology.Fish
	Hazards []Hazard
	Mode    Mode
	Clock   weather.Clock
	Meter   *fishing.Meter

	// Events collects this session's player-facing messages for the
	// presentation layer; the renderer drains it as it sees fit.
	Events []string

	seed       int64
	area       Area
	difficulty Difficulty
	species    []data.FishSpecies
	population int
	rng        *rand.Rand
	ledger     CaptureLedger

	castPath []geom.Point
	castStep int
}

// NewSession generates the starting area and spawns its population.
// Fails when the species list is empty or the generated map cannot
// hold any fish; no partial session is ever returned.
func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Species) == 0 {
		return nil, errors.New("new session: no fish species records")
	}
	pop := cfg.Population
	if pop <= 0 {
		pop = DefaultPopulation
	}

	src := entropy.New(cfg.Seed)
	width, height := AreaCoast.MapSize()
	m := mapgen.Generate(cfg.Seed, width, height)

	fishes, err := ecology.SpawnPopulation(m, cfg.Species, pop, src.Stream(entropy.StreamSpawn))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		Player:     newPlayer(m.Center(), cfg.Gear),
		Map:        m,
		Fishes:     fishes,
		Mode:       Exploring{},
		seed:       cfg.Seed,
		difficulty: cfg.Difficulty,
		species:    cfg.Species,
		population: pop,
		rng:        src.Stream(entropy.StreamTurn),
		ledger:     cfg.Ledger,
	}

	slog.Info("session started",
		"seed", cfg.Seed,
		"difficulty", cfg.Difficulty.String(),
		"area", s.area.String(),
		"map", m.String(),
		"fish", len(fishes),
	)
	return s, nil
}

// Area returns the current progression tier.
func (s *Session) Area() Area {
	return s.area
}

// Seed returns the seed of the currently generated map.
func (s *Session) Seed() int64 {
	return s.seed
}

// CastPath returns the remaining cast animation path and the index of
// the current animation step.
func (s *Session) CastPath() ([]geom.Point, int) {
	return s.castPath, s.castStep
}

// Apply advances the simulation by one turn for the given action.
// Once the run has ended it does nothing.
func (s *Session) Apply(a Action) {
	if _, over := s.Mode.(Ended); over {
		return
	}

	reeling := false
	switch a.Kind {
	case ActionNone:
	case ActionMove:
		s.handleMove(a.Delta)
	case ActionCast:
		switch s.Mode.(type) {
		case Exploring:
			s.cast()
		case Aiming:
			// The cast key doubles as confirmation while aiming.
			s.confirmCast()
		}
	case ActionConfirmCast:
		if _, ok := s.Mode.(Aiming); ok {
			s.confirmCast()
		}
	case ActionReel:
		if _, ok := s.Mode.(Fishing); ok {
			reeling = true
		}
	case ActionEat:
		s.eatRawFish()
	case ActionCook:
		s.cookFish()
	case ActionSnack:
		s.eatCannedFood()
	case ActionEquip:
		s.equip(a.Item)
	case ActionEndRun:
		if _, ok := s.Mode.(Exploring); ok {
			s.endRun()
			return
		}
	}

	s.advanceTime()

	switch s.Mode.(type) {
	case Exploring:
		ecology.UpdatePopulation(s.Map, s.Fishes, s.rng, s.Clock.TimeOfDay(), s.Clock.Drift())
	case Aiming:
		// Aiming freezes the world apart from the shared turn effects.
	case Fishing:
		s.updateFishing(reeling)
	}

	s.updateHazards()
	s.checkProgression()
}

func (s *Session) handleMove(delta geom.Point) {
	switch m := s.Mode.(type) {
	case Aiming:
		s.Mode = Aiming{Target: m.Target.Add(delta).Clamp(s.Map.Width, s.Map.Height)}
	case Exploring:
		s.Player.Pos = s.Player.Pos.Add(delta).Clamp(s.Map.Width, s.Map.Height)
	}
}

func (s *Session) cast() {
	if s.Player.Line <= 0 {
		s.say("Your line is broken!")
		return
	}
	if len(s.Fishes) == 0 {
		s.say("No fish around.")
		return
	}
	s.say("Select target...")
	s.Mode = Aiming{Target: s.Player.Pos}
}

func (s *Session) confirmCast() {
	aiming, ok := s.Mode.(Aiming)
	if !ok {
		return
	}
	s.say("Casting...")
	s.castPath = geom.LinePath(s.Player.Pos, aiming.Target)
	s.castStep = 0
	s.Mode = Fishing{Wait: castWait}
}

func (s *Session) updateFishing(reeling bool) {
	mode, ok := s.Mode.(Fishing)
	if !ok {
		return
	}

	if mode.Wait > 0 {
		if s.castStep < len(s.castPath) {
			s.castStep++
		} else {
			s.castPath = nil
		}
		s.Mode = Fishing{Wait: mode.Wait - 1}
		return
	}

	if s.Meter == nil {
		tile := mapgen.TileShallow
		if len(s.Fishes) > 0 {
			tile = s.Map.TileAt(s.Fishes[0].Pos)
		}
		chance := fishing.BiteProbability(tile, s.Player.BaitBonus)
		if s.rng.Float64() < chance {
			s.say("Hooked a fish!")
			strength := 0
			style := data.FightAggressive
			if len(s.Fishes) > 0 {
				strength = s.Fishes[0].Species.Strength
				style = s.Fishes[0].Species.Style
			}
			m := fishing.NewMeter(strength, style, s.Player.ReelFactor)
			m.MaxTension += s.Player.TensionBonus
			s.Meter = m
		} else {
			s.say("The fish got away...")
			s.Mode = Exploring{}
		}
		return
	}

	switch s.Meter.Update(reeling) {
	case fishing.Ongoing:
	case fishing.Success:
		s.landFish()
		s.Meter = nil
		s.Mode = Exploring{}
	case fishing.Broken:
		s.say("Line snapped!")
		s.Player.Line -= LineDamage
		if s.Player.Line <= 0 {
			s.Player.Line = 0
			s.say("Your line is ruined.")
		}
		s.Meter = nil
		s.Mode = Exploring{}
	case fishing.Lost:
		s.say("The fish escaped!")
		s.Meter = nil
		s.Mode = Exploring{}
	}
}

func (s *Session) landFish() {
	if len(s.Fishes) == 0 {
		return
	}
	caught := s.Fishes[0]
	s.Fishes[0] = s.Fishes[len(s.Fishes)-1]
	s.Fishes = s.Fishes[:len(s.Fishes)-1]

	s.Player.Inventory = append(s.Player.Inventory, caught.Species)
	s.say("Caught a %s!", caught.Species.Name)
	slog.Info("fish landed", "species", caught.Species.ID, "legendary", caught.Species.Legendary)

	if s.ledger != nil {
		if err := s.ledger.RecordCapture(caught.Species.ID); err != nil {
			slog.Warn("capture not recorded", "species", caught.Species.ID, "error", err)
		}
	}
}

// advanceTime applies the per-turn side effects shared by every mode:
// the clock, hunger and starvation, land finds, storms and hazards.
func (s *Session) advanceTime() {
	s.Clock.Advance()

	if s.Player.Hunger > 0 {
		loss := s.difficulty.HungerLoss(s.Clock.Turn)
		if loss > 0 {
			s.Player.Hunger -= loss
			if s.Player.Hunger <= 0 {
				s.Player.Hunger = 0
				s.say("You are starving!")
			}
		}
	} else if s.Player.HP > 0 {
		s.Player.HP--
	}

	switch s.Map.TileAt(s.Player.Pos) {
	case mapgen.TileLand:
		if entropy.Chance(s.rng, landChance) {
			if s.rng.Intn(2) == 0 && s.Player.HP < MaxHP {
				s.Player.HP++
				s.say("You rest on the shore.")
			} else {
				s.Player.CannedFood++
				s.say("You found canned food!")
			}
		}
	case mapgen.TileDeep:
		if entropy.Chance(s.rng, stormChance) {
			s.Clock.StartStorm()
			s.say("A storm reduces visibility!")
		}
		if entropy.Chance(s.rng, s.difficulty.HazardChance(s.area)) {
			s.Hazards = append(s.Hazards, Hazard{Pos: s.Player.Pos, Turns: HazardDuration})
			s.say("A jellyfish appears!")
		}
	}
}

func (s *Session) updateHazards() {
	for i := range s.Hazards {
		if s.Hazards[i].Turns > 0 {
			s.Hazards[i].Turns--
		}
	}

	for _, h := range s.Hazards {
		if h.Pos != s.Player.Pos {
			continue
		}
		if s.Player.HP > 0 {
			s.Player.HP -= HazardDamage
			if s.Player.HP < 0 {
				s.Player.HP = 0
			}
			s.say("A jellyfish stings you!")
		}
		s.Player.Line -= LineDamage
		if s.Player.Line < 0 {
			s.Player.Line = 0
		}
	}

	// Swap-remove expired hazards; order is irrelevant.
	for i := 0; i < len(s.Hazards); {
		if s.Hazards[i].Turns <= 0 {
			s.Hazards[i] = s.Hazards[len(s.Hazards)-1]
			s.Hazards = s.Hazards[:len(s.Hazards)-1]
		} else {
			i++
		}
	}
}

// checkProgression upgrades the area once lifetime captures cross the
// next milestone: a bigger map, a fresh population, a recentered
// player.
func (s *Session) checkProgression() {
	if s.ledger == nil {
		return
	}
	threshold := s.area.NextThreshold()
	if threshold < 0 {
		return
	}
	total, err := s.ledger.TotalCaptures()
	if err != nil {
		slog.Warn("capture total unavailable", "error", err)
		return
	}
	if total < threshold {
		return
	}

	s.area++
	s.seed++
	width, height := s.area.MapSize()
	s.Map = mapgen.Generate(s.seed, width, height)

	fishes, err := ecology.SpawnPopulation(s.Map, s.species, s.population, s.rng)
	if err != nil {
		// A generated area without water would be extraordinary;
		// carry on with open water empty rather than abort mid-run.
		slog.Warn("area respawn failed", "area", s.area.String(), "error", err)
		fishes = nil
	}
	s.Fishes = fishes
	s.Hazards = nil
	s.Meter = nil
	s.castPath = nil
	s.Player.Pos = s.Map.Center()

	s.say("You set out for the %s.", s.area)
	slog.Info("area unlocked",
		"area", s.area.String(),
		"captures", total,
		"map", s.Map.String(),
	)
}

func (s *Session) eatRawFish() {
	if len(s.Player.Inventory) == 0 {
		s.say("No fish to eat.")
		return
	}
	s.Player.Inventory = s.Player.Inventory[:len(s.Player.Inventory)-1]
	s.Player.Hunger = min(s.Player.Hunger+eatRawFish, MaxHunger)
	s.say("You ate a raw fish.")
}

func (s *Session) cookFish() {
	if s.Map.TileAt(s.Player.Pos) != mapgen.TileLand {
		s.say("You need to be on land to cook.")
		return
	}
	if len(s.Player.Inventory) == 0 {
		s.say("No fish to cook.")
		return
	}
	s.Player.Inventory = s.Player.Inventory[:len(s.Player.Inventory)-1]
	s.Player.Hunger = min(s.Player.Hunger+eatCookedFish, MaxHunger)
	s.Player.HP = min(s.Player.HP+cookHPRestore, MaxHP)
	s.say("You cooked and ate a fish.")
}

func (s *Session) eatCannedFood() {
	if s.Player.CannedFood <= 0 {
		s.say("No canned food available.")
		return
	}
	s.Player.CannedFood--
	s.Player.Hunger = min(s.Player.Hunger+eatCannedFood, MaxHunger)
	s.say("You ate canned food.")
}

// equip activates the item at idx in the loose item list. Gear swaps
// into its slot, pushing any displaced piece back into the list; food
// is consumed on the spot.
func (s *Session) equip(idx int) {
	if idx < 0 || idx >= len(s.Player.Items) {
		s.say("Nothing to equip.")
		return
	}
	item := s.Player.Items[idx]
	s.Player.Items = append(s.Player.Items[:idx], s.Player.Items[idx+1:]...)

	switch item.Kind {
	case data.GearRod:
		if old, ok := s.Player.Rod.Equip(item); ok {
			s.Player.Items = append(s.Player.Items, old)
		}
		s.Player.TensionBonus = item.TensionBonus
		s.say("You equip the %s.", item.Name)
	case data.GearReel:
		if old, ok := s.Player.Reel.Equip(item); ok {
			s.Player.Items = append(s.Player.Items, old)
		}
		s.Player.ReelFactor = item.ReelFactor
		s.say("You equip the %s.", item.Name)
	case data.GearLure:
		if old, ok := s.Player.Lure.Equip(item); ok {
			s.Player.Items = append(s.Player.Items, old)
		}
		s.Player.BaitBonus = item.BiteBonus
		s.say("You equip the %s.", item.Name)
	case data.GearFood:
		s.Player.Hunger = min(s.Player.Hunger+eatCannedFood, MaxHunger)
		s.say("You ate the %s.", item.Name)
	}
}

// Score sums the inverse-rarity value of every carried fish: rarer
// catches are worth more.
func (s *Session) Score() int {
	score := 0
	for _, sp := range s.Player.Inventory {
		score += int(math.Round((1 / sp.Rarity) * 10))
	}
	return score
}

func (s *Session) endRun() {
	score := s.Score()
	s.say("Run ended! Final score: %d", score)
	slog.Info("run ended", "score", score, "turns", s.Clock.Turn, "catches", len(s.Player.Inventory))
	s.Mode = Ended{Score: score}
}

// IsVisible reports whether the renderer should draw the given point.
// Sight is unlimited except on deep water, where storms shrink it
// further.
func (s *Session) IsVisible(p geom.Point) bool {
	onDeep := s.Map.TileAt(s.Player.Pos) == mapgen.TileDeep
	r := s.Clock.Visibility(onDeep)
	return geom.Abs(p.X-s.Player.Pos.X) <= r && geom.Abs(p.Y-s.Player.Pos.Y) <= r
}

func (s *Session) say(format string, args ...any) {
	s.Events = append(s.Events, fmt.Sprintf(format, args...))
}
