// Package data loads the game's reference records: fish species and
// gear items. Records come from JSON files keyed by simple string
// fields; a file that yields no records is a hard error, never an
// empty default.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
)

// ErrNoRecords is returned when a reference file parses but contains
// no usable records.
var ErrNoRecords = errors.New("no records")

// FieldError reports a malformed reference-data field, with a
// suggestion when the value is close to a known one.
type FieldError struct {
	Field string
	Value string
	Hint  string
}

func (e *FieldError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid %s %q (did you mean %q?)", e.Field, e.Value, e.Hint)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// suggest returns the known value nearest to v, or "" when nothing is
// within edit distance 3.
func suggest(v string, known []string) string {
	best := ""
	bestDist := 4
	for _, k := range known {
		if d := levenshtein.ComputeDistance(v, k); d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}

// FightStyle is a species' behavior profile during the tension
// mini-game.
type FightStyle uint8

const (
	// FightAggressive fish produce sudden large tension spikes.
	FightAggressive FightStyle = iota
	// FightEndurance fish pull steadily and tire late in the fight.
	FightEndurance
	// FightEvasive fish flee the moment the line goes slack.
	FightEvasive
)

var fightStyleNames = []string{"Aggressive", "Endurance", "Evasive"}

func (s FightStyle) String() string {
	if int(s) < len(fightStyleNames) {
		return fightStyleNames[s]
	}
	return "Unknown"
}

// UnmarshalJSON parses a fight style from its string name.
func (s *FightStyle) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return &FieldError{Field: "fight_style", Value: string(b)}
	}
	for i, n := range fightStyleNames {
		if n == name {
			*s = FightStyle(i)
			return nil
		}
	}
	return &FieldError{Field: "fight_style", Value: name, Hint: suggest(name, fightStyleNames)}
}

// MarshalJSON writes the fight style's string name.
func (s FightStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// FishSpecies holds the reference parameters for one species.
type FishSpecies struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Rarity    float64    `json:"rarity"`
	Strength  int        `json:"strength"`
	MinDepth  int        `json:"min_depth"`
	MaxDepth  int        `json:"max_depth"`
	Style     FightStyle `json:"fight_style"`
	Legendary bool       `json:"legendary"`
}

// GearKind classifies a gear item.
type GearKind uint8

const (
	GearRod GearKind = iota
	GearReel
	GearLure
	GearFood
)

var gearKindNames = []string{"Rod", "Reel", "Lure", "Food"}

func (k GearKind) String() string {
	if int(k) < len(gearKindNames) {
		return gearKindNames[k]
	}
	return "Unknown"
}

// UnmarshalJSON parses a gear kind from its string name.
func (k *GearKind) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return &FieldError{Field: "kind", Value: string(b)}
	}
	for i, n := range gearKindNames {
		if n == name {
			*k = GearKind(i)
			return nil
		}
	}
	return &FieldError{Field: "kind", Value: name, Hint: suggest(name, gearKindNames)}
}

// MarshalJSON writes the gear kind's string name.
func (k GearKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// GearItem holds the reference parameters for one gear item.
type GearItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         GearKind `json:"kind"`
	TensionBonus int      `json:"tension_bonus"`
	ReelFactor   float64  `json:"reel_factor"`
	BiteBonus    float64  `json:"bite_bonus"`
}

// ParseSpecies decodes a species list from JSON.
func ParseSpecies(b []byte) ([]FishSpecies, error) {
	var species []FishSpecies
	if err := json.Unmarshal(b, &species); err != nil {
		return nil, fmt.Errorf("parse species: %w", err)
	}
	if len(species) == 0 {
		return nil, fmt.Errorf("parse species: %w", ErrNoRecords)
	}
	for _, sp := range species {
		if sp.ID == "" {
			return nil, &FieldError{Field: "id", Value: ""}
		}
		if sp.Rarity <= 0 {
			return nil, &FieldError{Field: "rarity", Value: fmt.Sprintf("%g", sp.Rarity)}
		}
		if sp.MinDepth > sp.MaxDepth {
			return nil, &FieldError{
				Field: "min_depth",
				Value: fmt.Sprintf("%d > max_depth %d", sp.MinDepth, sp.MaxDepth),
			}
		}
	}
	return species, nil
}

// ParseGear decodes a gear list from JSON.
func ParseGear(b []byte) ([]GearItem, error) {
	var items []GearItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse gear: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("parse gear: %w", ErrNoRecords)
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, &FieldError{Field: "id", Value: ""}
		}
	}
	return items, nil
}

// LoadSpecies reads and decodes a species file.
func LoadSpecies(path string) ([]FishSpecies, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}
	species, err := ParseSpecies(b)
	if err != nil {
		return nil, fmt.Errorf("load species %s: %w", path, err)
	}
	return species, nil
}

// LoadGear reads and decodes a gear file.
func LoadGear(path string) ([]GearItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load gear: %w", err)
	}
	items, err := ParseGear(b)
	if err != nil {
		return nil, fmt.Errorf("load gear %s: %w", path, err)
	}
	return items, nil
}
