package engine

import (
	"tictactoe/game"
)

// MaxMoves bounds a game; a board has no more empty cells than this.
const MaxMoves = game.BoardSize

// Score tallies the outcomes of a battle.
type Score struct {
	CrossWins  int
	NaughtWins int
	Draws      int
}

func (s Score) Games() int {
	return s.CrossWins + s.NaughtWins + s.Draws
}

func (s *Score) Add(result game.GameResult) {
	switch result {
	case game.CrossWin:
		s.CrossWins++
	case game.NaughtWin:
		s.NaughtWins++
	case game.Draw:
		s.Draws++
	}
}
