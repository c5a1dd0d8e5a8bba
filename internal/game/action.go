package game

import "github.com/talgya/driftline/internal/geom"

// ActionKind identifies one discrete player action per turn. Mapping
// physical keys to actions is the caller's concern.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionCast
	ActionConfirmCast
	ActionReel
	ActionEat
	ActionCook
	ActionSnack
	ActionEquip
	ActionEndRun
)

// Action is one turn's input.
type Action struct {
	Kind  ActionKind
	Delta geom.Point // ActionMove only
	Item  int        // ActionEquip only: index into Player.Items
}

// Move builds a movement action.
func Move(dx, dy int) Action {
	return Action{Kind: ActionMove, Delta: geom.Pt(dx, dy)}
}
