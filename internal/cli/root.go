package cli

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/thruflo/guess/internal/config"
	"github.com/thruflo/guess/internal/game"
	"github.com/thruflo/guess/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// newRootCmd builds the guess command. src draws the secret; nil means
// game.DefaultSource.
func newRootCmd(src game.Source) *cobra.Command {
	cfg := config.DefaultGame()

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number between 1 and 100",
		Long: `Guess picks a secret number between 1 and 100 and asks for guesses on
standard input until the right one is entered. Each guess is answered
with "Too small", "Too big" or "You win!".

Anything that is not a whole non-negative number is rejected and the
prompt is repeated. Closing standard input ends the game with an error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuess(cmd, &cfg, src)
		},
	}

	cmd.Version = Version
	cmd.SetVersionTemplate("guess version {{.Version}}\n")
	addDebugFlags(cmd.Flags(), &cfg)

	return cmd
}

// addDebugFlags registers the hidden diagnostics flags.
func addDebugFlags(fs *pflag.FlagSet, cfg *config.Game) {
	fs.BoolVar(&cfg.Reveal, "reveal", cfg.Reveal, "Log the secret number to stderr")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Stderr log level: debug, info, warn or error")
	_ = fs.MarkHidden("reveal")
	_ = fs.MarkHidden("log-level")
}

func runGuess(cmd *cobra.Command, cfg *config.Game, src game.Source) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.ValidateGame(cfg); err != nil {
		return err
	}

	logger := logging.New()
	logger.SetLevel(cfg.Level())
	logger.SetOutput(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))

	in := cmd.InOrStdin()
	logger.Debug("starting game", "interactive", isTerminal(in), "version", Version)

	g := game.New(in, cmd.OutOrStdout(), game.Options{
		Source: src,
		Logger: logger,
	})
	if cfg.Reveal {
		logger.Warn("revealing secret number", "secret", g.Secret())
	}

	_, err := g.Play(ctx)
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(nil).Execute()
}
