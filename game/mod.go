package game

import (
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// StateHash canonically identifies a board configuration.
type StateHash uint64

// Symbol is the content of a single cell.
type Symbol int

const (
	Empty Symbol = iota
	Cross
	Naught
)

// Opponent returns the other side. Empty has no opponent.
func (s Symbol) Opponent() Symbol {
	switch s {
	case Cross:
		return Naught
	case Naught:
		return Cross
	default:
		return Empty
	}
}

func (s Symbol) String() string {
	switch s {
	case Cross:
		return "x"
	case Naught:
		return "o"
	default:
		return "."
	}
}

// GameResult is the outcome of a board by inspection.
type GameResult int

const (
	NotFinished GameResult = iota
	CrossWin
	NaughtWin
	Draw
)

// WinFor returns the result in which side has won.
func WinFor(side Symbol) GameResult {
	switch side {
	case Cross:
		return CrossWin
	case Naught:
		return NaughtWin
	default:
		panic("no win for empty symbol")
	}
}

func (r GameResult) String() string {
	switch r {
	case CrossWin:
		return "cross wins"
	case NaughtWin:
		return "naught wins"
	case Draw:
		return "draw"
	case NotFinished:
		return "not finished"
	default:
		return "unknown"
	}
}

// Validate returns ErrUnexpectedResult unless r is the outcome of a finished
// game.
func (r GameResult) Validate() error {
	switch r {
	case CrossWin, NaughtWin, Draw:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedResult, r)
	}
}

var (
	ErrOutOfRange   = errors.New("position out of range")
	ErrOccupied     = errors.New("cell is occupied")
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrOutOfTurn    = errors.New("side is not to move")
	ErrInvalidBoard = errors.New("invalid board")

	ErrUnexpectedResult = errors.New("unexpected game result")
)

// lines lists the 3 rows, 3 columns and 2 diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}
