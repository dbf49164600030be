package learner

import (
	"errors"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// unusable marks a table entry whose move turned out to be illegal. It lies
// below every real value.
const unusable = -1.0

var (
	ErrLearningRate     = errors.New("learning rate must lie strictly between 0 and 1")
	ErrExplorationRate  = errors.New("exploration rate must lie strictly between 0 and 1")
	ErrValue            = errors.New("value must lie between the loss and win values")
	ErrUnexpectedResult = game.ErrUnexpectedResult
)

// Strategy selects how a single move is chosen. It is re-drawn every move.
type Strategy int

const (
	Exploitation Strategy = iota
	Exploration
)

func (s Strategy) String() string {
	if s == Exploration {
		return "exploration"
	}
	return "exploitation"
}

// Values holds one estimate per board position for a single state.
type Values [game.BoardSize]float64

// Step is one recorded decision of the current game.
type Step struct {
	Hash game.StateHash
	Move int
}

type Option func(a *Agent)

func WithName(name string) Option {
	return func(a *Agent) {
		if name != "" {
			a.name = name
		}
	}
}

func WithLearningRate(alpha float64) Option {
	return func(a *Agent) {
		a.alpha = alpha
	}
}

func WithExplorationRate(epsilon float64) Option {
	return func(a *Agent) {
		a.epsilon = epsilon
	}
}

func WithDrawValue(v float64) Option {
	return func(a *Agent) {
		a.vDraw = v
	}
}

// WithInitValue sets the starting estimate of moves that do not end the game.
func WithInitValue(v float64) Option {
	return func(a *Agent) {
		a.vInit = v
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}
