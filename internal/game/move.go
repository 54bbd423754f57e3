package game

import "strings"

// Move is a single-letter move code, always stored lowercase.
type Move string

const (
	MoveDragon Move = "d"
	MoveKnight Move = "k"
	MoveWizard Move = "w"
	MoveDruid  Move = "r"
)

// Mode selects which move set a phase plays with.
type Mode int

const (
	ModeStandard Mode = iota
	ModeBonus
)

// beats maps each standard move to the move it defeats.
// Dragon beats knight, knight beats wizard, wizard beats dragon.
var beats = map[Move]Move{
	MoveDragon: MoveKnight,
	MoveKnight: MoveWizard,
	MoveWizard: MoveDragon,
}

// Moves returns the allowed move set for the mode. The druid is only
// playable in the bonus phase.
func (m Mode) Moves() []Move {
	if m == ModeBonus {
		return []Move{MoveDragon, MoveKnight, MoveWizard, MoveDruid}
	}
	return []Move{MoveDragon, MoveKnight, MoveWizard}
}

// ParseMove normalizes raw input and checks it against the allowed set.
// Matching is case-insensitive.
func ParseMove(raw string, allowed []Move) (Move, bool) {
	m := Move(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if m == a {
			return m, true
		}
	}
	return "", false
}

// Beats reports whether m defeats other under the cyclic standard table.
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

// Label returns the full character name for a move code.
func (m Move) Label() string {
	switch m {
	case MoveDragon:
		return "dragon"
	case MoveKnight:
		return "knight"
	case MoveWizard:
		return "wizard"
	case MoveDruid:
		return "druid"
	default:
		return "unknown"
	}
}
