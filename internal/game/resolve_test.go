package game

import "testing"

func standardMoves() []Move {
	return []Move{MoveDragon, MoveKnight, MoveWizard}
}

func bonusMoves() []Move {
	return []Move{MoveDragon, MoveKnight, MoveWizard, MoveDruid}
}

func TestResolveStandardTable(t *testing.T) {
	cases := []struct {
		human, robot Move
		want         Outcome
	}{
		{MoveDragon, MoveKnight, OutcomeHumanWin},
		{MoveDragon, MoveWizard, OutcomeRobotWin},
		{MoveDragon, MoveDragon, OutcomeTie},
		{MoveKnight, MoveWizard, OutcomeHumanWin},
		{MoveKnight, MoveDragon, OutcomeRobotWin},
		{MoveKnight, MoveKnight, OutcomeTie},
		{MoveWizard, MoveDragon, OutcomeHumanWin},
		{MoveWizard, MoveKnight, OutcomeRobotWin},
		{MoveWizard, MoveWizard, OutcomeTie},
	}

	for _, tc := range cases {
		res := resolveStandard(tc.human, tc.robot)
		if res.Outcome != tc.want {
			t.Errorf("resolveStandard(%s,%s) = %v; want %v", tc.human, tc.robot, res.Outcome, tc.want)
		}
	}
}

func TestResolveStandardDeltas(t *testing.T) {
	win := resolveStandard(MoveDragon, MoveKnight)
	if win.HumanDelta != 1 || win.RobotDelta != 0 || win.TieDelta != 0 {
		t.Errorf("human win deltas = (%d,%d,%d); want (1,0,0)", win.HumanDelta, win.RobotDelta, win.TieDelta)
	}

	loss := resolveStandard(MoveKnight, MoveDragon)
	if loss.HumanDelta != 0 || loss.RobotDelta != 1 || loss.TieDelta != 0 {
		t.Errorf("robot win deltas = (%d,%d,%d); want (0,1,0)", loss.HumanDelta, loss.RobotDelta, loss.TieDelta)
	}

	tie := resolveStandard(MoveWizard, MoveWizard)
	if tie.HumanDelta != 0 || tie.RobotDelta != 0 || tie.TieDelta != 1 {
		t.Errorf("tie deltas = (%d,%d,%d); want (0,0,1)", tie.HumanDelta, tie.RobotDelta, tie.TieDelta)
	}
}

// Swapping sides must swap winner attribution for every unequal pair.
func TestResolveStandardComplementary(t *testing.T) {
	for _, a := range standardMoves() {
		for _, b := range standardMoves() {
			got := resolveStandard(a, b).Outcome
			swapped := resolveStandard(b, a).Outcome

			if a == b {
				if got != OutcomeTie || swapped != OutcomeTie {
					t.Errorf("(%s,%s) should tie both ways", a, b)
				}
				continue
			}
			if got == OutcomeHumanWin && swapped != OutcomeRobotWin {
				t.Errorf("(%s,%s) human win not mirrored by (%s,%s)", a, b, b, a)
			}
			if got == OutcomeRobotWin && swapped != OutcomeHumanWin {
				t.Errorf("(%s,%s) robot win not mirrored by (%s,%s)", a, b, b, a)
			}
		}
	}
}

// Every standard move beats exactly one other move and loses to exactly one.
func TestCyclicClosure(t *testing.T) {
	for _, m := range standardMoves() {
		var beatsCount, losesCount int
		for _, other := range standardMoves() {
			if m == other {
				continue
			}
			if m.Beats(other) {
				beatsCount++
			}
			if other.Beats(m) {
				losesCount++
			}
		}
		if beatsCount != 1 || losesCount != 1 {
			t.Errorf("%s beats %d moves and loses to %d; want 1 and 1", m, beatsCount, losesCount)
		}
	}
}

// Every 4-move pair must land in exactly one of the six bonus cases.
func TestResolveBonusExhaustive(t *testing.T) {
	for _, h := range bonusMoves() {
		for _, r := range bonusMoves() {
			res := resolveBonus(h, r)

			var want Outcome
			switch {
			case h == MoveDruid && r != MoveDruid:
				want = OutcomeHumanDruid
			case h != MoveDruid && r == MoveDruid:
				want = OutcomeRobotDruid
			case h == MoveDruid && r == MoveDruid:
				want = OutcomeBothDruid
			case h == r:
				want = OutcomeTie
			case h.Beats(r):
				want = OutcomeHumanWin
			default:
				want = OutcomeRobotWin
			}

			if res.Outcome != want {
				t.Errorf("resolveBonus(%s,%s) = %v; want %v", h, r, res.Outcome, want)
			}
		}
	}
}

func TestResolveBonusDeltas(t *testing.T) {
	cases := []struct {
		name         string
		human, robot Move
		hd, rd, td   int
	}{
		{"human druid", MoveDruid, MoveDragon, 2, -2, 0},
		{"robot druid", MoveKnight, MoveDruid, -2, 2, 0},
		{"both druid", MoveDruid, MoveDruid, -2, -2, 0},
		{"plain tie", MoveDragon, MoveDragon, 0, 0, 1},
		{"plain human win", MoveKnight, MoveWizard, 1, 0, 0},
		{"plain robot win", MoveWizard, MoveKnight, 0, 1, 0},
	}

	for _, tc := range cases {
		res := resolveBonus(tc.human, tc.robot)
		if res.HumanDelta != tc.hd || res.RobotDelta != tc.rd || res.TieDelta != tc.td {
			t.Errorf("%s: deltas = (%d,%d,%d); want (%d,%d,%d)",
				tc.name, res.HumanDelta, res.RobotDelta, res.TieDelta, tc.hd, tc.rd, tc.td)
		}
	}
}
