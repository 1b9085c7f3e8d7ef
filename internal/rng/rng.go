package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/trickcord/trickcord/internal/rng Source

// Source provides the randomness used by the spawn gate and the lottery
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64

	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand implements Source using math/rand. The mutex makes it safe for the
// concurrent session handlers that share one source.
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new seeded random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Rand{
		random: rand.New(source),
	}
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn returns a uniform value in [0, n)
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
