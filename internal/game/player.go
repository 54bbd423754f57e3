package game

import "math/rand"

// MoveSource produces a move from the allowed set for the current mode.
// The human implementation prompts the terminal; robots draw at random.
type MoveSource interface {
	ChooseMove(allowed []Move) (Move, error)
}

// Player is one participant: the shared name/points state plus the
// move-selection behavior that distinguishes humans from robots.
type Player struct {
	Name   string
	Points int
	Source MoveSource
}

func NewPlayer(name string, src MoveSource) *Player {
	return &Player{Name: name, Source: src}
}

// ResetPoints zeroes the score, used when the bonus phase starts fresh.
func (p *Player) ResetPoints() {
	p.Points = 0
}

// RandomSource draws uniformly from the allowed move set. Draws are
// independent; no state carries between calls beyond the PRNG stream.
type RandomSource struct {
	rng *rand.Rand
}

func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

func (s *RandomSource) ChooseMove(allowed []Move) (Move, error) {
	return allowed[s.rng.Intn(len(allowed))], nil
}
