package config

import (
	"errors"
	"fmt"

	"github.com/thruflo/guess/internal/logging"
)

// Default values for Game.
const (
	DefaultLogLevel = "warn"
)

// DefaultGame returns a Game with the secret hidden and warn-level logging.
func DefaultGame() Game {
	return Game{
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// ValidateGame checks that all config values are valid.
func ValidateGame(cfg *Game) error {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// Level returns the parsed log level. Call ValidateGame first.
func (g Game) Level() logging.Level {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
