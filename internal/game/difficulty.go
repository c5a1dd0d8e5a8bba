package game

import "fmt"

// Difficulty scales hunger drain and hazard frequency.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = []string{"Easy", "Normal", "Hard"}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "Unknown"
}

// ParseDifficulty maps a difficulty name to its value.
func ParseDifficulty(name string) (Difficulty, error) {
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), nil
		}
	}
	return Normal, fmt.Errorf("invalid difficulty %q", name)
}

// HungerLoss returns how much hunger drains on the given turn. Easy
// drains every other turn, Hard twice per turn.
func (d Difficulty) HungerLoss(turn int) int {
	switch d {
	case Easy:
		if turn%2 == 0 {
			return 1
		}
		return 0
	case Hard:
		return 2
	default:
		return 1
	}
}

// HazardChance returns the percent chance per deep-water turn that a
// hazard spawns, rising with both difficulty and area.
func (d Difficulty) HazardChance(a Area) int {
	base := 5
	switch d {
	case Easy:
		base = 3
	case Hard:
		base = 8
	}
	return base + 3*int(a)
}

// Area is a progression tier. Later areas have larger maps and more
// dangerous waters.
type Area uint8

const (
	AreaCoast Area = iota
	AreaOffshore
	AreaDeepSea
)

var areaNames = []string{"Coast", "Offshore", "DeepSea"}

func (a Area) String() string {
	if int(a) < len(areaNames) {
		return areaNames[a]
	}
	return "Unknown"
}

// MapSize returns the map dimensions for an area.
func (a Area) MapSize() (width, height int) {
	switch a {
	case AreaOffshore:
		return 160, 100
	case AreaDeepSea:
		return 200, 120
	default:
		return 120, 80
	}
}

// NextThreshold returns the lifetime capture count that unlocks the
// following area, or -1 when the area is final.
func (a Area) NextThreshold() int {
	switch a {
	case AreaCoast:
		return 3
	case AreaOffshore:
		return 8
	default:
		return -1
	}
}
