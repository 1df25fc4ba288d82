// Package game implements the guess-the-number loop.
//
// A Game draws a secret between Min and Max once, then prompts for guesses on
// an io.Reader and writes feedback to an io.Writer until the secret is hit.
// Lines that do not parse as an unsigned integer are rejected and re-prompted.
// Running out of input is fatal and reported as ErrInput.
package game
