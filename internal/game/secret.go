package game

import (
	"math/rand"
)

// Bounds of the secret number, both inclusive.
const (
	Min = 1
	Max = 100
)

// Source provides pseudo-random integers.
type Source interface {
	// IntN returns a number in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.Intn(n) }

// DefaultSource is backed by the math/rand global generator.
var DefaultSource Source = globalSource{}

// NewSecret draws a secret uniformly from [Min, Max].
func NewSecret(src Source) uint64 {
	if src == nil {
		src = DefaultSource
	}
	return uint64(Min + src.IntN(Max-Min+1))
}
