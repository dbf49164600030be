package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Board is the 3x3 grid shared by the two players of a game. Cells are stored
// by value so that Clone never aliases the original's storage.
type Board struct {
	cells [BoardSize]Symbol
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// FromCells builds a board from a row-major cell configuration. Cross always
// moves first, so the cross count must equal or exceed the naught count by one.
func FromCells(cells [BoardSize]Symbol) (*Board, error) {
	crosses, naughts := 0, 0
	for i, c := range cells {
		switch c {
		case Cross:
			crosses++
		case Naught:
			naughts++
		case Empty:
		default:
			return nil, fmt.Errorf("%w: cell %d holds unknown symbol %d", ErrInvalidBoard, i, c)
		}
	}
	if diff := crosses - naughts; diff != 0 && diff != 1 {
		return nil, fmt.Errorf("%w: %d crosses and %d naughts", ErrInvalidBoard, crosses, naughts)
	}
	return &Board{cells: cells}, nil
}

// Reset clears all cells.
func (b *Board) Reset() {
	b.cells = [BoardSize]Symbol{}
}

// Clone returns an independent copy for speculative look-ahead.
func (b *Board) Clone() *Board {
	return &Board{cells: b.cells}
}

// Cells returns a copy of the row-major cell contents.
func (b *Board) Cells() [BoardSize]Symbol {
	return b.cells
}

// At returns the symbol at position.
func (b *Board) At(position int) Symbol {
	return b.cells[position]
}

// IsLegal reports whether position is on the board and empty.
func (b *Board) IsLegal(position int) bool {
	return position >= 0 && position < BoardSize && b.cells[position] == Empty
}

// LegalMoves returns the empty positions in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// SideToMove returns Cross when both sides have placed the same number of
// symbols and Naught otherwise.
func (b *Board) SideToMove() Symbol {
	crosses, naughts := 0, 0
	for _, c := range b.cells {
		switch c {
		case Cross:
			crosses++
		case Naught:
			naughts++
		}
	}
	if crosses > naughts {
		return Naught
	}
	return Cross
}

// Move places side at position and returns the resulting outcome and whether
// it ended the game. The board is mutated in place; callers exploring
// alternatives must operate on a Clone.
func (b *Board) Move(position int, side Symbol) (GameResult, bool, error) {
	if position < 0 || position >= BoardSize {
		return NotFinished, false, fmt.Errorf("%w: %d", ErrOutOfRange, position)
	}
	if b.Result() != NotFinished {
		return NotFinished, true, ErrGameOver
	}
	if b.cells[position] != Empty {
		return NotFinished, false, fmt.Errorf("%w: %d holds %s", ErrOccupied, position, b.cells[position])
	}
	if side == Empty || side != b.SideToMove() {
		return NotFinished, false, fmt.Errorf("%w: %s", ErrOutOfTurn, side)
	}

	b.cells[position] = side
	result := b.Result()
	return result, result != NotFinished, nil
}

// CheckWin reports whether any row, column or diagonal is uniform and non-empty.
func (b *Board) CheckWin() bool {
	return b.winner() != Empty
}

func (b *Board) winner() Symbol {
	for _, line := range lines {
		s := b.cells[line[0]]
		if s != Empty && s == b.cells[line[1]] && s == b.cells[line[2]] {
			return s
		}
	}
	return Empty
}

// Result classifies the board: a completed line wins for its symbol, a full
// board without one is a draw.
func (b *Board) Result() GameResult {
	if w := b.winner(); w != Empty {
		return WinFor(w)
	}
	if b.NumEmpty() == 0 {
		return Draw
	}
	return NotFinished
}

// NumEmpty counts the empty cells.
func (b *Board) NumEmpty() int {
	n := 0
	for _, c := range b.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// RandomEmptySpot picks uniformly among empty cells. It reports false on a
// full board.
func (b *Board) RandomEmptySpot(rng *rand.Rand) (int, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return -1, false
	}
	return moves[rng.Intn(len(moves))], true
}

// Hash encodes the board in base 3: cell i contributes symbol(i) * 3^i.
func (b *Board) Hash() StateHash {
	var h StateHash
	for i := BoardSize - 1; i >= 0; i-- {
		h = h*3 + StateHash(b.cells[i])
	}
	return h
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[row*3+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
