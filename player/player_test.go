package player

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"tictactoe/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomMove(t *testing.T) {
	t.Run("plays until the board is decided", func(t *testing.T) {
		p := NewRandom("random", rand.New(rand.NewSource(1)))
		q := NewRandom("random2", rand.New(rand.NewSource(2)))
		p.NewGame(game.Cross)
		q.NewGame(game.Naught)

		board := game.NewBoard()
		players := []Player{p, q}
		finished := false
		moves := 0
		for !finished {
			var err error
			_, finished, err = players[moves%2].Move(board)
			require.NoError(t, err, "Random player should only play legal moves")
			moves++
		}
		require.NotEqual(t, game.NotFinished, board.Result())
		require.LessOrEqual(t, moves, game.BoardSize)
	})

	t.Run("panics without randomness", func(t *testing.T) {
		require.Panics(t, func() { NewRandom("random", nil) })
	})
}

func TestHumanMove(t *testing.T) {
	t.Run("maps keys to positions row-major", func(t *testing.T) {
		for position, key := range Keys {
			h := NewHuman("human", strings.NewReader(key), io.Discard)
			h.NewGame(game.Cross)
			board := game.NewBoard()

			_, _, err := h.Move(board)
			require.NoError(t, err)
			require.Equal(t, game.Cross, board.At(position), "Key %q should map to %d", key, position)
		}
	})

	t.Run("re-prompts on unknown and occupied input", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman("human", strings.NewReader("p 9 s c"), &out)
		h.NewGame(game.Naught)
		board := game.NewBoard()
		_, _, err := board.Move(4, game.Cross)
		require.NoError(t, err)

		_, finished, err := h.Move(board)
		require.NoError(t, err)
		require.False(t, finished)
		require.Equal(t, game.Naught, board.At(8), "Only the last valid token should be played")
		require.Equal(t, 4, strings.Count(out.String(), "Your move?"), "Each token should prompt once")
	})

	t.Run("fails when input ends", func(t *testing.T) {
		h := NewHuman("human", strings.NewReader("zz"), io.Discard)
		h.NewGame(game.Cross)

		_, _, err := h.Move(game.NewBoard())
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("prints the key layout", func(t *testing.T) {
		var out bytes.Buffer
		NewHuman("human", strings.NewReader(""), &out).PrintInstructions()
		require.Contains(t, out.String(), " q | w | e ")
		require.Contains(t, out.String(), " z | x | c ")
	})
}

func TestFinalResultRejectsUnfinishedGames(t *testing.T) {
	players := []Player{
		NewRandom("random", rand.New(rand.NewSource(1))),
		NewHuman("human", strings.NewReader(""), io.Discard),
	}
	for _, p := range players {
		p.NewGame(game.Cross)
		for _, result := range []game.GameResult{game.CrossWin, game.NaughtWin, game.Draw} {
			require.NoError(t, p.FinalResult(result), "%s should accept %s", p.Name(), result)
		}
		require.ErrorIs(t, p.FinalResult(game.NotFinished), game.ErrUnexpectedResult, p.Name())
		require.ErrorIs(t, p.FinalResult(game.GameResult(42)), game.ErrUnexpectedResult, p.Name())
	}
}

func TestHumanSeat(t *testing.T) {
	first := NewHuman("first", strings.NewReader("s q"), io.Discard)
	second := first.Seat("second")
	first.NewGame(game.Cross)
	second.NewGame(game.Naught)
	board := game.NewBoard()

	_, _, err := first.Move(board)
	require.NoError(t, err)
	_, _, err = second.Move(board)
	require.NoError(t, err)

	require.Equal(t, "second", second.Name())
	require.Equal(t, game.Cross, board.At(4))
	require.Equal(t, game.Naught, board.At(0), "The second seat should read the token after the first seat's")
}
