package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/talgya/driftline/internal/geom"
	"github.com/talgya/driftline/internal/weather"
)

// Snapshot is the minimal persisted session state: five fields in a
// flat key-value text blob. The wire format is fixed by the save-file
// collaborator.
type Snapshot struct {
	Pos        geom.Point
	HP         int
	Hunger     int
	CannedFood int
	TimeOfDay  weather.TimeOfDay
}

// SnapshotError reports a malformed or missing snapshot field.
type SnapshotError struct {
	Field  string
	Reason string
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot field %s: %s", e.Field, e.Reason)
}

// Snapshot captures the session's persistable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Pos:        s.Player.Pos,
		HP:         s.Player.HP,
		Hunger:     s.Player.Hunger,
		CannedFood: s.Player.CannedFood,
		TimeOfDay:  s.Clock.TimeOfDay(),
	}
}

// Restore applies a snapshot to the session. The clock jumps to the
// start of the snapshot's time-of-day phase.
func (s *Session) Restore(sn Snapshot) {
	s.Player.Pos = sn.Pos.Clamp(s.Map.Width, s.Map.Height)
	s.Player.HP = sn.HP
	s.Player.Hunger = sn.Hunger
	s.Player.CannedFood = sn.CannedFood
	s.Clock.Turn = int(sn.TimeOfDay) * weather.SegmentTurns
}

// EncodeSnapshot renders a snapshot as the flat key-value format.
func EncodeSnapshot(sn Snapshot) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "x: %d\n", sn.Pos.X)
	fmt.Fprintf(&b, "y: %d\n", sn.Pos.Y)
	fmt.Fprintf(&b, "hp: %d\n", sn.HP)
	fmt.Fprintf(&b, "hunger: %d\n", sn.Hunger)
	fmt.Fprintf(&b, "food: %d\n", sn.CannedFood)
	fmt.Fprintf(&b, "time_of_day: %s\n", sn.TimeOfDay)
	return []byte(b.String())
}

// DecodeSnapshot parses the flat key-value format. Every field is
// required; errors name the offending field.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Snapshot{}, &SnapshotError{Field: line, Reason: "missing separator"}
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	intField := func(key string) (int, error) {
		raw, ok := fields[key]
		if !ok {
			return 0, &SnapshotError{Field: key, Reason: "missing"}
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, &SnapshotError{Field: key, Reason: fmt.Sprintf("invalid integer %q", raw)}
		}
		return n, nil
	}

	var sn Snapshot
	var err error
	if sn.Pos.X, err = intField("x"); err != nil {
		return Snapshot{}, err
	}
	if sn.Pos.Y, err = intField("y"); err != nil {
		return Snapshot{}, err
	}
	if sn.HP, err = intField("hp"); err != nil {
		return Snapshot{}, err
	}
	if sn.Hunger, err = intField("hunger"); err != nil {
		return Snapshot{}, err
	}
	if sn.CannedFood, err = intField("food"); err != nil {
		return Snapshot{}, err
	}

	raw, ok := fields["time_of_day"]
	if !ok {
		return Snapshot{}, &SnapshotError{Field: "time_of_day", Reason: "missing"}
	}
	tod, err := weather.ParseTimeOfDay(raw)
	if err != nil {
		return Snapshot{}, &SnapshotError{Field: "time_of_day", Reason: fmt.Sprintf("unknown phase %q", raw)}
	}
	sn.TimeOfDay = tod

	return sn, nil
}

// SaveSnapshot writes the session snapshot to path.
func (s *Session) SaveSnapshot(path string) error {
	if err := os.WriteFile(path, EncodeSnapshot(s.Snapshot()), 0o644); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads and applies a snapshot from path. On any error
// the session is left untouched.
func (s *Session) LoadSnapshot(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	sn, err := DecodeSnapshot(b)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", path, err)
	}
	s.Restore(sn)
	return nil
}
