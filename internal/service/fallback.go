package service

import (
	"math/rand"
	"sync"
	"time"
)

// FallbackTraits and FallbackPowers are combined into a placeholder meaning
// when the provider cannot be used.
var (
	FallbackTraits = []string{
		"Guardian of lost tv remotes",
		"Master of midnight snack raids",
	}

	FallbackPowers = []string{
		"blessed with the ability to find anything in a messy room",
		"gifted with eternal optimism and great taste in memes",
	}
)

// FallbackGenerator picks a random trait and power. It is safe for concurrent use.
type FallbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackGenerator creates a generator seeded from src, or from the clock
// when src is nil.
func NewFallbackGenerator(src rand.Source) *FallbackGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &FallbackGenerator{rng: rand.New(src)}
}

// Meaning returns "<trait> and <power>".
func (f *FallbackGenerator) Meaning() string {
	f.mu.Lock()
	trait := FallbackTraits[f.rng.Intn(len(FallbackTraits))]
	power := FallbackPowers[f.rng.Intn(len(FallbackPowers))]
	f.mu.Unlock()

	return trait + " and " + power
}
