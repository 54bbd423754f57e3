package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dragonwizardknight/internal/game"
)

// ErrInputClosed reports that stdin was closed or failed mid-prompt.
// The game has no recovery for this; callers abort.
var ErrInputClosed = errors.New("input closed")

// Prompter reads validated answers from the terminal. Every prompt loops
// until the answer is valid; the only way out is a valid answer or a
// dead input stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ReadName keeps asking until a non-empty name comes back.
func (p *Prompter) ReadName(prompt string) (string, error) {
	for {
		name, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
}

// ReadRounds keeps asking until it gets a positive integer.
func (p *Prompter) ReadRounds(prompt string) (int, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintln(p.out, "--> please enter a valid integer number")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "--> please enter a number that is GREATER than zero")
			continue
		}
		return n, nil
	}
}

// ReadMove keeps asking until the answer matches one of the allowed
// single-letter codes. Matching is case-insensitive; the returned move
// is lowercase.
func (p *Prompter) ReadMove(allowed []game.Move) (game.Move, error) {
	codes := moveCodes(allowed)
	prompt := fmt.Sprintf("choose your character (%s): ", strings.Join(codes, "/"))
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if m, ok := game.ParseMove(raw, allowed); ok {
			return m, nil
		}
		fmt.Fprintf(p.out, "--> please enter one of %s\n", strings.ToUpper(strings.Join(codes, ", ")))
	}
}

func moveCodes(allowed []game.Move) []string {
	codes := make([]string, len(allowed))
	for i, m := range allowed {
		codes[i] = string(m)
	}
	return codes
}

// HumanSource satisfies game.MoveSource by prompting the terminal.
type HumanSource struct {
	prompter *Prompter
}

func NewHumanSource(p *Prompter) *HumanSource {
	return &HumanSource{prompter: p}
}

func (s *HumanSource) ChooseMove(allowed []game.Move) (game.Move, error) {
	return s.prompter.ReadMove(allowed)
}
