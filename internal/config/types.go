package config

// Game holds the debug options of one game run. The secret range is fixed
// and lives in package game.
type Game struct {
	Reveal   bool   // Log the secret at info level
	LogLevel string // Minimum stderr log level
}
