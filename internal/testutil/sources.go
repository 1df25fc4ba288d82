package testutil

// FixedSource always returns Value, clamped into [0, n).
type FixedSource struct {
	Value int
}

// IntN implements game.Source.
func (s FixedSource) IntN(n int) int {
	if s.Value < 0 {
		return 0
	}
	if s.Value >= n {
		return n - 1
	}
	return s.Value
}

// SecretSource returns a source that makes game.NewSecret produce secret.
// It relies on the secret range starting at 1.
func SecretSource(secret int) FixedSource {
	return FixedSource{Value: secret - 1}
}

// SequenceSource returns Values in order and wraps around at the end.
// Calls records how many draws were made.
type SequenceSource struct {
	Values []int
	Calls  int
}

// IntN implements game.Source.
func (s *SequenceSource) IntN(n int) int {
	v := s.Values[s.Calls%len(s.Values)] % n
	s.Calls++
	return v
}
