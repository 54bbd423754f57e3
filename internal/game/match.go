package game

import "go.uber.org/zap"

// Fixed participant and verdict names. The final-winner record is text and
// gates the bonus phase by comparing against the human's entered name.
const (
	SallyName = "Sally"
	BobName   = "Bob"
	NoOne     = "no one"
	JointName = "Bob and Sally"
)

// Verdict is a phase-final outcome.
type Verdict struct {
	Winner string
	Tie    bool // collapsed tie configurations, Winner is "no one"
	Joint  bool // Sally and Bob tied at the top, both above the human
}

// Match holds all mutable state for one sitting: the participants, the
// tie counter, and the round cursor for the current phase.
type Match struct {
	Human *Player
	Sally *Player
	Bob   *Player // nil until the bonus phase unlocks

	TiePoints    int
	CurrentRound int
	TotalRounds  int

	// FinalWinner records the standard-phase verdict text.
	FinalWinner string

	logger *zap.Logger
}

func NewMatch(human, sally *Player, logger *zap.Logger) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{Human: human, Sally: sally, logger: logger}
}

// StartPhase arms the round loop for a fresh phase of n rounds.
func (m *Match) StartPhase(n int) {
	m.TotalRounds = n
	m.CurrentRound = 0
}

// NextRound advances the round cursor and returns the new round number.
func (m *Match) NextRound() int {
	m.CurrentRound++
	return m.CurrentRound
}

// PlayStandard resolves one standard-phase battle against Sally and
// applies the deltas.
func (m *Match) PlayStandard(humanMove, robotMove Move) RoundResult {
	res := resolveStandard(humanMove, robotMove)
	m.apply(m.Sally, res)
	return res
}

// PlayBonus resolves one bonus-phase battle against the given opponent
// and applies the deltas. Called twice per bonus round, once per robot.
func (m *Match) PlayBonus(opponent *Player, humanMove, robotMove Move) RoundResult {
	res := resolveBonus(humanMove, robotMove)
	m.apply(opponent, res)
	return res
}

func (m *Match) apply(opponent *Player, res RoundResult) {
	m.Human.Points += res.HumanDelta
	opponent.Points += res.RobotDelta
	m.TiePoints += res.TieDelta

	m.logger.Info("round resolved",
		zap.Int("round", m.CurrentRound),
		zap.String("opponent", opponent.Name),
		zap.String("human_move", string(res.HumanMove)),
		zap.String("robot_move", string(res.RobotMove)),
		zap.Int("human_delta", res.HumanDelta),
		zap.Int("robot_delta", res.RobotDelta),
		zap.Int("tie_points", m.TiePoints),
	)
}

// StandardVerdict decides the standard phase: strictly more points wins,
// equal points collapse to "no one". The winner text is recorded to gate
// the bonus phase.
func (m *Match) StandardVerdict() Verdict {
	v := Verdict{Winner: NoOne, Tie: true}
	switch {
	case m.Sally.Points > m.Human.Points:
		v = Verdict{Winner: m.Sally.Name}
	case m.Human.Points > m.Sally.Points:
		v = Verdict{Winner: m.Human.Name}
	}
	m.FinalWinner = v.Winner

	m.logger.Info("standard verdict",
		zap.String("winner", v.Winner),
		zap.Int("human_points", m.Human.Points),
		zap.Int("sally_points", m.Sally.Points),
		zap.Int("tie_points", m.TiePoints),
	)
	return v
}

// BonusUnlocked reports whether the recorded standard winner is the human.
func (m *Match) BonusUnlocked() bool {
	return m.FinalWinner == m.Human.Name
}

// StartBonus resets scores and the tie counter for the bonus phase and
// seats Bob at the table.
func (m *Match) StartBonus(bob *Player) {
	m.Human.ResetPoints()
	m.Sally.ResetPoints()
	m.TiePoints = 0
	m.Bob = bob
}

// BonusVerdict decides the three-way bonus phase. A strict single maximum
// wins outright; when both robots strictly beat the human the remaining
// possibility is that they are tied at the top, a joint win. Every other
// configuration collapses to "no one".
func (m *Match) BonusVerdict() Verdict {
	h, s, b := m.Human.Points, m.Sally.Points, m.Bob.Points

	var v Verdict
	switch {
	case s > h && s > b:
		v = Verdict{Winner: m.Sally.Name}
	case b > s && b > h:
		v = Verdict{Winner: m.Bob.Name}
	case h > s && h > b:
		v = Verdict{Winner: m.Human.Name}
	case s > h && b > h:
		v = Verdict{Winner: JointName, Joint: true}
	default:
		v = Verdict{Winner: NoOne, Tie: true}
	}

	m.logger.Info("bonus verdict",
		zap.String("winner", v.Winner),
		zap.Int("human_points", h),
		zap.Int("sally_points", s),
		zap.Int("bob_points", b),
		zap.Int("tie_points", m.TiePoints),
	)
	return v
}
