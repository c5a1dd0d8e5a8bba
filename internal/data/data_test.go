package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSpecies = `[
  {
    "id": "TROUT",
    "name": "River Trout",
    "rarity": 1.0,
    "strength": 4,
    "min_depth": 1,
    "max_depth": 40,
    "fight_style": "Endurance",
    "legendary": false
  },
  {
    "id": "MARLIN",
    "name": "Black Marlin",
    "rarity": 0.1,
    "strength": 9,
    "min_depth": 40,
    "max_depth": 120,
    "fight_style": "Aggressive",
    "legendary": true
  }
]`

func TestParseSpecies(t *testing.T) {
	species, err := ParseSpecies([]byte(sampleSpecies))
	if err != nil {
		t.Fatalf("ParseSpecies: %v", err)
	}
	if len(species) != 2 {
		t.Fatalf("got %d species, want 2", len(species))
	}
	if species[0].Style != FightEndurance {
		t.Errorf("style = %v, want Endurance", species[0].Style)
	}
	if !species[1].Legendary {
		t.Error("MARLIN should be legendary")
	}
}

func TestParseSpeciesEmptyIsError(t *testing.T) {
	_, err := ParseSpecies([]byte(`[]`))
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
}

func TestUnknownFightStyleSuggests(t *testing.T) {
	bad := strings.Replace(sampleSpecies, "Endurance", "Endurence", 1)
	_, err := ParseSpecies([]byte(bad))
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldError", err)
	}
	if fe.Field != "fight_style" {
		t.Errorf("field = %q, want fight_style", fe.Field)
	}
	if fe.Hint != "Endurance" {
		t.Errorf("hint = %q, want Endurance", fe.Hint)
	}
}

func TestInvalidDepthRange(t *testing.T) {
	bad := strings.Replace(sampleSpecies, `"min_depth": 40`, `"min_depth": 400`, 1)
	_, err := ParseSpecies([]byte(bad))
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldError", err)
	}
	if fe.Field != "min_depth" {
		t.Errorf("field = %q, want min_depth", fe.Field)
	}
}

func TestParseGear(t *testing.T) {
	items, err := ParseGear([]byte(`[
	  {"id": "ROD1", "name": "Old Rod", "kind": "Rod", "tension_bonus": 10, "reel_factor": 1.0, "bite_bonus": 0.0},
	  {"id": "REEL1", "name": "Rusty Reel", "kind": "Reel", "tension_bonus": 0, "reel_factor": 1.5, "bite_bonus": 0.0}
	]`))
	if err != nil {
		t.Fatalf("ParseGear: %v", err)
	}
	if items[0].Kind != GearRod || items[1].Kind != GearReel {
		t.Errorf("kinds = %v/%v, want Rod/Reel", items[0].Kind, items[1].Kind)
	}
	if items[1].ReelFactor != 1.5 {
		t.Errorf("reel factor = %g, want 1.5", items[1].ReelFactor)
	}
}

func TestLoadSpeciesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.json")
	if err := os.WriteFile(path, []byte(sampleSpecies), 0o644); err != nil {
		t.Fatal(err)
	}
	species, err := LoadSpecies(path)
	if err != nil {
		t.Fatalf("LoadSpecies: %v", err)
	}
	if len(species) != 2 {
		t.Fatalf("got %d species, want 2", len(species))
	}
}

func TestLoadSpeciesMissingFile(t *testing.T) {
	if _, err := LoadSpecies(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
