package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"lottopay/internal/repositories"
)

const (
	// Lottery numbers live in the fixed 12-digit space.
	numberMin = 100_000_000_000
	numberMax = 999_999_999_999

	// With ~10^6 outstanding tickets a collision per draw is ~10^-6, so a
	// handful of attempts is already generous.
	maxGenerateAttempts = 20
)

// RandomSource is the randomness capability. Winner selection and number
// generation go through it so tests can inject a seeded generator.
type RandomSource interface {
	Intn(n int) int
	Int63n(n int64) int64
}

// NewRandomSource returns a time-seeded source safe for concurrent callers.
func NewRandomSource() RandomSource {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a deterministic source for tests.
func NewSeededSource(seed int64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int63n(n)
}

type NumberGeneratorInterface interface {
	Generate(ctx context.Context, count int) ([]string, error)
}

func NewNumberGenerator(entryRepo repositories.EntryRepository, src RandomSource) NumberGeneratorInterface {
	return &numberGenerator{
		entryRepo: entryRepo,
		src:       src,
	}
}

type numberGenerator struct {
	entryRepo repositories.EntryRepository
	src       RandomSource
}

// Generate draws count distinct numbers uniformly from the 12-digit space,
// skipping any that are already on a ticket. The read here only trims the
// collision window: the ticket table's unique index is the real guard, and
// the issuer retries the insert when it fires.
func (g *numberGenerator) Generate(ctx context.Context, count int) ([]string, error) {
	numbers := make([]string, 0, count)
	seen := make(map[string]bool, count)

	for attempts := 0; len(numbers) < count; attempts++ {
		if attempts >= maxGenerateAttempts+count {
			return nil, fmt.Errorf("could not find %d free numbers after %d attempts", count, attempts)
		}

		n := numberMin + g.src.Int63n(numberMax-numberMin+1)
		candidate := strconv.FormatInt(n, 10)
		if seen[candidate] {
			continue
		}

		taken, err := g.entryRepo.NumberExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		seen[candidate] = true
		numbers = append(numbers, candidate)
	}

	return numbers, nil
}
