package sim

import "math/rand/v2"

// Rand is the randomness source behind pairing jitter and narrative line
// selection. Injectable so tests can supply deterministic draws.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

func (systemRand) IntN(n int) int { return rand.IntN(n) }

func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// pick returns a random element of lines.
func pick(r Rand, lines []string) string {
	return lines[r.IntN(len(lines))]
}
