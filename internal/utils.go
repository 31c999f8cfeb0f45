package internal

import (
	"math/rand/v2"
)

// NewRng returns a seeded PCG generator and the seed it used. A zero seed
// draws a fresh one so the run can be reproduced from the log.
func NewRng(seed uint64) (*rand.Rand, uint64) {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
