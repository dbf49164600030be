package searcher

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Game-theoretic values from the perspective of the side to move.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// ErrNoMoves is returned when asked to search a finished board.
var ErrNoMoves = errors.New("no legal moves to search")

type Option func(a *Agent)

// WithName overrides the agent's display name.
func WithName(name string) Option {
	return func(a *Agent) {
		if name != "" {
			a.name = name
		}
	}
}

// WithRandomTies breaks ties between equally optimal moves uniformly at
// random instead of taking the first one found.
func WithRandomTies() Option {
	return func(a *Agent) {
		a.randomTies = true
	}
}

// WithSeed makes random tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithoutCache disables the transposition cache.
func WithoutCache() Option {
	return func(a *Agent) {
		a.cache = nil
	}
}

func WithMetrics() Option {
	return func(a *Agent) {
		a.metrics = NewMetricsCollector()
	}
}
