package player

import (
	"fmt"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Player is implemented by every agent that can take part in a game.
type Player interface {
	Name() string
	// NewGame is called once before each game with the side to play. It resets
	// per-game state only.
	NewGame(side game.Symbol)
	// Move commits exactly one legal move to board and returns the outcome.
	Move(board *game.Board) (game.GameResult, bool, error)
	// FinalResult reports the outcome of the finished game from the global
	// perspective.
	FinalResult(result game.GameResult) error
}

// Random plays uniformly among the currently legal cells.
type Random struct {
	name string
	side game.Symbol
	rng  *rand.Rand
}

// NewRandom returns a random player drawing from rng.
func NewRandom(name string, rng *rand.Rand) *Random {
	if rng == nil {
		panic("random player needs a source of randomness")
	}
	return &Random{name: name, rng: rng}
}

func (r *Random) Name() string { return r.name }

func (r *Random) NewGame(side game.Symbol) { r.side = side }

func (r *Random) Move(board *game.Board) (game.GameResult, bool, error) {
	position, ok := board.RandomEmptySpot(r.rng)
	if !ok {
		return game.NotFinished, true, fmt.Errorf("%s: %w", r.name, game.ErrGameOver)
	}
	return board.Move(position, r.side)
}

func (r *Random) FinalResult(result game.GameResult) error { return result.Validate() }
