package game

// Outcome classifies one resolved battle.
type Outcome int

const (
	OutcomeHumanWin Outcome = iota
	OutcomeRobotWin
	OutcomeTie
	OutcomeHumanDruid // human played druid, robot did not
	OutcomeRobotDruid // robot played druid, human did not
	OutcomeBothDruid  // both played druid, both penalized
)

// RoundResult carries the outcome of one battle and its point deltas.
// Deltas are applied by the match, not by the resolver.
type RoundResult struct {
	Outcome    Outcome
	HumanMove  Move
	RobotMove  Move
	HumanDelta int
	RobotDelta int
	TieDelta   int
}

// resolveStandard decides a battle over the 3-move set. Equal moves tie;
// otherwise the cyclic table leaves exactly one winner.
func resolveStandard(human, robot Move) RoundResult {
	res := RoundResult{HumanMove: human, RobotMove: robot}
	switch {
	case human == robot:
		res.Outcome = OutcomeTie
		res.TieDelta = 1
	case human.Beats(robot):
		res.Outcome = OutcomeHumanWin
		res.HumanDelta = 1
	default:
		res.Outcome = OutcomeRobotWin
		res.RobotDelta = 1
	}
	return res
}

// resolveBonus decides a battle over the 4-move set. The druid cases are
// checked first and are mutually exclusive; everything else falls back to
// the standard table.
func resolveBonus(human, robot Move) RoundResult {
	res := RoundResult{HumanMove: human, RobotMove: robot}
	switch {
	case human == MoveDruid && robot != MoveDruid:
		res.Outcome = OutcomeHumanDruid
		res.HumanDelta, res.RobotDelta = 2, -2
	case human != MoveDruid && robot == MoveDruid:
		res.Outcome = OutcomeRobotDruid
		res.HumanDelta, res.RobotDelta = -2, 2
	case human == MoveDruid && robot == MoveDruid:
		res.Outcome = OutcomeBothDruid
		res.HumanDelta, res.RobotDelta = -2, -2
	default:
		return resolveStandard(human, robot)
	}
	return res
}
