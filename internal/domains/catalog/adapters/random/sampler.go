package random

import (
	"math/rand/v2"
	"sync"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

var _ ports.Sampler = (*Sampler)(nil)

// Sampler draws from a seeded PCG generator. rand.Rand is not safe for
// concurrent use, so every draw holds the mutex.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a deterministic sampler for the given seed.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a uniform index in [0, n).
func (s *Sampler) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sample returns k distinct indices from [0, n) using a partial Fisher-Yates shuffle.
func (s *Sampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
