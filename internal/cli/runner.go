package cli

import (
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"dragonwizardknight/internal/game"
	"dragonwizardknight/internal/random"
)

// Options configures a Runner. Robot sources default to uniform draws
// from the given PRNG; tests inject scripted sources instead.
type Options struct {
	In      io.Reader
	Out     io.Writer
	RNG     *rand.Rand
	Logger  *zap.Logger
	NoColor bool

	SallySource game.MoveSource
	BobSource   game.MoveSource
}

// Runner drives the whole sitting: setup, the standard phase, the bonus
// gate, and the optional bonus phase.
type Runner struct {
	prompter *Prompter
	render   *Renderer
	logger   *zap.Logger

	sallySource game.MoveSource
	bobSource   game.MoveSource
}

func NewRunner(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RNG == nil && (opts.SallySource == nil || opts.BobSource == nil) {
		rng, err := random.NewRand(0)
		if err != nil {
			rng = rand.New(rand.NewSource(1))
		}
		opts.RNG = rng
	}
	if opts.SallySource == nil {
		opts.SallySource = game.NewRandomSource(opts.RNG)
	}
	if opts.BobSource == nil {
		opts.BobSource = game.NewRandomSource(opts.RNG)
	}
	return &Runner{
		prompter:    NewPrompter(opts.In, opts.Out),
		render:      NewRenderer(opts.Out, opts.NoColor),
		logger:      opts.Logger,
		sallySource: opts.SallySource,
		bobSource:   opts.BobSource,
	}
}

// Run plays one full game. It returns an error only when the input
// stream dies; every played-out game returns nil.
func (r *Runner) Run() error {
	r.render.Rules()

	name, err := r.prompter.ReadName("good luck... sorry, I didn't catch your name. what is it? ")
	if err != nil {
		return err
	}

	human := game.NewPlayer(name, NewHumanSource(r.prompter))
	sally := game.NewPlayer(game.SallyName, r.sallySource)
	m := game.NewMatch(human, sally, r.logger)

	r.render.Welcome(name)
	r.render.Divider()

	total, err := r.prompter.ReadRounds(fmt.Sprintf("how many rounds would you like to play, %s? enter a number: ", name))
	if err != nil {
		return err
	}
	m.StartPhase(total)
	r.logger.Info("standard phase started", zap.Int("rounds", total), zap.String("player", name))

	for m.CurrentRound < m.TotalRounds {
		if err := r.playStandardRound(m); err != nil {
			return err
		}
		r.render.Scores(m, false)
	}

	r.render.Divider()
	r.render.PhaseVerdict(m.StandardVerdict(), false)

	if m.BonusUnlocked() {
		if err := r.runBonus(m); err != nil {
			return err
		}
	}

	r.render.Farewell()
	return nil
}

func (r *Runner) playStandardRound(m *game.Match) error {
	round := m.NextRound()
	r.render.RoundBanner(round, m.TotalRounds, false)

	allowed := game.ModeStandard.Moves()
	humanMove, err := m.Human.Source.ChooseMove(allowed)
	if err != nil {
		return err
	}
	robotMove, err := m.Sally.Source.ChooseMove(allowed)
	if err != nil {
		return err
	}
	r.render.RobotChose(m.Sally.Name, robotMove)

	res := m.PlayStandard(humanMove, robotMove)
	r.render.BattleResult(res, m.Human.Name, m.Sally.Name, false)
	return nil
}

func (r *Runner) runBonus(m *game.Match) error {
	r.render.Divider()
	r.render.BonusRules()

	m.StartBonus(game.NewPlayer(game.BobName, r.bobSource))

	total, err := r.prompter.ReadRounds(fmt.Sprintf("how many bonus rounds %s? enter a number: ", m.Human.Name))
	if err != nil {
		return err
	}
	m.StartPhase(total)
	r.logger.Info("bonus phase started", zap.Int("rounds", total))

	for m.CurrentRound < m.TotalRounds {
		if err := r.playBonusRound(m); err != nil {
			return err
		}
		r.render.Scores(m, true)
	}

	r.render.Divider()
	r.render.PhaseVerdict(m.BonusVerdict(), true)
	return nil
}

// playBonusRound runs the two independent battles of one bonus round.
// The human is prompted separately for each robot.
func (r *Runner) playBonusRound(m *game.Match) error {
	round := m.NextRound()
	r.render.RoundBanner(round, m.TotalRounds, true)

	allowed := game.ModeBonus.Moves()
	for _, opponent := range []*game.Player{m.Sally, m.Bob} {
		r.render.BattleIntro(opponent.Name, opponent == m.Sally)

		humanMove, err := m.Human.Source.ChooseMove(allowed)
		if err != nil {
			return err
		}
		robotMove, err := opponent.Source.ChooseMove(allowed)
		if err != nil {
			return err
		}
		r.render.RobotChose(opponent.Name, robotMove)

		res := m.PlayBonus(opponent, humanMove, robotMove)
		r.render.BattleResult(res, m.Human.Name, opponent.Name, true)
	}
	return nil
}
