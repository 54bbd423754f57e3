package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dragonwizardknight/internal/game"
)

const rulesText = `welcome to Dragon, Wizard, Knight! this is a game of luck, mind-reading, and superpowers.

please read the rules below:

during this game, the user plays against a robot named Sally. the game will keep score and declare
a winner after a certain number of rounds determined by the user at the beginning of the game.

when prompted, the user will enter their choice of character: Dragon, Wizard, or Knight.

dragon beats Knight -- the Knight cannot withstand fire obviously
knight beats Wizard -- the Wizard is slain by the Knights sword of course
wizard beats Dragon -- the Dragon cannot break the spell of the Wizard on his own clearly

if you are strong enough to withstand the forces of the great and powerful Sally, perhaps you may
be invited to the secret world and more features will be unlocked!
`

const bonusRulesText = `congrats! you defeated the almighty Sally... but can you defeat Sally AND Bob to become the ultimate winner?
now you must choose two characters, one to take on Sally and one to take on Bob.
to win the round, you now must beat both Bob AND Sally... oh and here's one more catch:

there is one new character -- the Druid -- if you choose to play the Druid, you automatically win the
round and GAIN two points... UNLESS the other player has also chosen to play the Druid this round. then,
everyone that has chosen to play the Druid LOSES two points, while the other player who did not
play the Druid receives two points. continue at your own risk... to become the MOST ULTIMATE winner.
`

// Renderer writes all game output. Colors are accents only; the text
// reads the same with them disabled.
type Renderer struct {
	out    io.Writer
	banner *color.Color
	winner *color.Color
	robot  *color.Color
}

func NewRenderer(out io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		out:    out,
		banner: color.New(color.FgCyan, color.Bold),
		winner: color.New(color.FgGreen, color.Bold),
		robot:  color.New(color.FgYellow),
	}
	if noColor {
		r.banner.DisableColor()
		r.winner.DisableColor()
		r.robot.DisableColor()
	}
	return r
}

func (r *Renderer) Rules() {
	fmt.Fprint(r.out, rulesText+"\n")
}

func (r *Renderer) BonusRules() {
	fmt.Fprint(r.out, bonusRulesText+"\n")
}

func (r *Renderer) Divider() {
	fmt.Fprint(r.out, "\n--------------------------------------------------\n\n")
}

// Welcome echoes the entered name back with the intro taunt.
func (r *Renderer) Welcome(name string) {
	fmt.Fprintf(r.out, "\nright, apologies %s. good luck, but you won't need it. sally never fails...\n", name)
}

func (r *Renderer) RoundBanner(round, total int, bonus bool) {
	label := "round"
	if bonus {
		label = "bonus round"
	}
	r.banner.Fprintf(r.out, "\n--- %s %d of %d ---\n", label, round, total)
}

// BattleIntro announces which robot the next prompt is for.
func (r *Renderer) BattleIntro(name string, first bool) {
	order := "next"
	if first {
		order = "first"
	}
	fmt.Fprintf(r.out, "\n%s, for your battle against %s...\n", order, name)
}

// RobotChose echoes a robot's draw, code uppercase plus the full name.
func (r *Renderer) RobotChose(name string, m game.Move) {
	r.robot.Fprintf(r.out, "%s chose: %s (%s)\n", strings.ToLower(name), strings.ToUpper(string(m)), m.Label())
}

// BattleResult prints the winner line for one battle.
func (r *Renderer) BattleResult(res game.RoundResult, humanName, robotName string, bonus bool) {
	text := winnerText(res.Outcome, humanName, robotName)
	if bonus {
		r.winner.Fprintf(r.out, "%s is the winner of %s vs %s.\n", text, robotName, humanName)
		return
	}
	r.winner.Fprintf(r.out, "\n%s is the winner of this round!\n", text)
}

func winnerText(o game.Outcome, humanName, robotName string) string {
	switch o {
	case game.OutcomeHumanWin:
		return humanName
	case game.OutcomeRobotWin:
		return robotName
	case game.OutcomeHumanDruid:
		return "someone played druid... " + humanName
	case game.OutcomeRobotDruid:
		return "someone played druid... " + robotName
	case game.OutcomeBothDruid:
		return "you both played druid! " + game.NoOne
	default:
		return "it's a tie :( " + game.NoOne
	}
}

// Scores prints the cumulative scoreboard block. Bob's line only shows
// once the bonus phase has seated him.
func (r *Renderer) Scores(m *game.Match, bonus bool) {
	fmt.Fprintf(r.out, "\n--- scores (round %d / %d) ---\n", m.CurrentRound, m.TotalRounds)
	fmt.Fprintf(r.out, "%s's points = %d\n", m.Human.Name, m.Human.Points)
	fmt.Fprintf(r.out, "%s's points = %d\n", strings.ToLower(m.Sally.Name), m.Sally.Points)
	if bonus {
		fmt.Fprintf(r.out, "%s's points = %d\n", strings.ToLower(m.Bob.Name), m.Bob.Points)
	}
	fmt.Fprintf(r.out, "tied points = %d\n\n", m.TiePoints)
}

// PhaseVerdict prints the final winner banner for a phase.
func (r *Renderer) PhaseVerdict(v game.Verdict, bonus bool) {
	title := "ULTIMATE winner"
	if bonus {
		title = "MOST ULTIMATE winner"
	}
	switch {
	case v.Joint:
		r.winner.Fprintf(r.out, "%s are the %ss!\n", v.Winner, title)
	case v.Tie:
		r.winner.Fprintf(r.out, "it's a tie :( %s is the %s!\n", v.Winner, title)
	default:
		r.winner.Fprintf(r.out, "%s is the %s!\n", v.Winner, title)
	}
}

func (r *Renderer) Farewell() {
	fmt.Fprintln(r.out, "bye bye. thanks for playing, come again soon!")
}
