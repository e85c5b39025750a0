package mascot

import "math/rand/v2"

// Source is the randomness Pick draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Pick returns a uniformly chosen message from pool, or "" if pool is empty.
func Pick(pool []string, src Source) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[src.IntN(len(pool))]
}
