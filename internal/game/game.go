package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thruflo/guess/internal/logging"
)

// Messages written to the player.
const (
	MsgWelcome  = "Welcome to the Guess the number game!"
	MsgPrompt   = "Please input your number: "
	MsgNotValid = "No characters allowed, please type a number"
	MsgGuessed  = "You guessed the number %d"
	MsgTooSmall = "Too small"
	MsgTooBig   = "Too big"
	MsgWin      = "You win!"
)

// ErrInput is returned by Play when the input can no longer supply a line.
var ErrInput = errors.New("failed to read line")

// State is the position of a game in its two-state machine.
type State int

const (
	StatePrompting State = iota // Waiting for a guess
	StateWon                    // Secret guessed; terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is the result of comparing one guess with the secret.
type Outcome int

const (
	OutcomeTooSmall Outcome = iota
	OutcomeTooBig
	OutcomeCorrect
)

// String returns the feedback printed for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooSmall:
		return MsgTooSmall
	case OutcomeTooBig:
		return MsgTooBig
	case OutcomeCorrect:
		return MsgWin
	default:
		return "unknown"
	}
}

// Compare orders guess against secret.
func Compare(guess, secret uint64) Outcome {
	switch {
	case guess < secret:
		return OutcomeTooSmall
	case guess > secret:
		return OutcomeTooBig
	default:
		return OutcomeCorrect
	}
}

// ParseGuess trims line and parses it as a base-10 unsigned 32-bit integer.
// Signs, letters and values over 32 bits are all rejected.
func ParseGuess(line string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(line), 10, 32)
}

// Result summarizes a finished or aborted game. Counters are for diagnostics.
type Result struct {
	State    State
	Secret   uint64
	Guesses  int // Lines that parsed as a number
	Rejected int // Lines that did not
}

// Options holds the optional dependencies of a Game.
type Options struct {
	// Source draws the secret. Defaults to DefaultSource.
	Source Source
	// Logger receives diagnostics. Defaults to the package-level logger.
	Logger *logging.Logger
}

// Game is a single session: one secret, one input, one output.
type Game struct {
	secret uint64
	state  State
	in     *bufio.Reader
	out    io.Writer
	log    *logging.Logger
	result Result
}

// New creates a Game and draws its secret.
func New(in io.Reader, out io.Writer, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	secret := NewSecret(opts.Source)
	return &Game{
		secret: secret,
		state:  StatePrompting,
		in:     bufio.NewReader(in),
		out:    out,
		log:    logger,
		result: Result{State: StatePrompting, Secret: secret},
	}
}

// Secret returns the number being guessed.
func (g *Game) Secret() uint64 {
	return g.secret
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Play prints the welcome message and runs the loop until the secret is
// guessed, the input fails, or ctx is cancelled between prompts.
//
// The read itself blocks and is not interrupted by ctx.
func (g *Game) Play(ctx context.Context) (Result, error) {
	fmt.Fprintln(g.out, MsgWelcome)

	for g.state == StatePrompting {
		if err := ctx.Err(); err != nil {
			return g.result, err
		}

		fmt.Fprintln(g.out, MsgPrompt)

		line, err := g.readLine()
		if err != nil {
			g.log.Debug("input closed", "error", err, "guesses", g.result.Guesses)
			return g.result, fmt.Errorf("%w: %w", ErrInput, err)
		}

		guess, err := ParseGuess(line)
		if err != nil {
			g.result.Rejected++
			g.log.Debug("rejected input", "line", strings.TrimSpace(line))
			fmt.Fprintln(g.out, MsgNotValid)
			continue
		}
		g.result.Guesses++

		fmt.Fprintf(g.out, MsgGuessed+"\n", guess)

		outcome := Compare(guess, g.secret)
		g.log.Debug("guess", "value", guess, "outcome", outcome)
		fmt.Fprintln(g.out, outcome)

		if outcome == OutcomeCorrect {
			g.state = StateWon
		}
	}

	g.result.State = g.state
	g.log.Info("game won", "secret", g.secret, "guesses", g.result.Guesses, "rejected", g.result.Rejected)
	return g.result, nil
}

// readLine returns the next line including its newline. A final line without
// a newline is returned as is; only an empty read at end of input is an error.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return "", err
}
