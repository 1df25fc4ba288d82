// Package testutil provides shared test helpers for guess.
//
// # Sources
//
//   - FixedSource - a game.Source that always returns the same value
//   - SecretSource(s) - a source that makes game.NewSecret return s
//   - SequenceSource - replays a list of values, for distribution tests
//
// # Input and output
//
//   - Input(lines...) - newline-joined player input
//   - OutputLines(out) - splits captured stdout into lines
//   - AssertFeedback(t, out, want...) - checks the feedback lines in order
//
// # Logging
//
//   - NewLogger(t, level) - a logging.Logger that writes to t.Log
package testutil
