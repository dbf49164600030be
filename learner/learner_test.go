package learner

import (
	"testing"

	"tictactoe/game"
	"tictactoe/player"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const greedy = 1e-12 // Exploration probability that never fires in practice

func newAgent(t *testing.T, options ...Option) *Agent {
	t.Helper()
	a, err := New(append([]Option{WithSeed(1)}, options...)...)
	require.NoError(t, err)
	return a
}

func boardFrom(t *testing.T, positions ...int) *game.Board {
	t.Helper()
	b := game.NewBoard()
	for _, p := range positions {
		_, _, err := b.Move(p, b.SideToMove())
		require.NoError(t, err)
	}
	return b
}

func TestNew(t *testing.T) {
	t.Run("accepts defaults", func(t *testing.T) {
		a, err := New()
		require.NoError(t, err)
		require.Equal(t, 0.1, a.LearningRate())
		require.Equal(t, 0.01, a.ExplorationRate())
		require.Equal(t, "VFPlayer", a.Name())
	})

	t.Run("rejects learning rates outside (0,1)", func(t *testing.T) {
		for _, alpha := range []float64{0, 1, -0.1, 1.5} {
			_, err := New(WithLearningRate(alpha))
			require.ErrorIs(t, err, ErrLearningRate, "alpha=%v", alpha)
		}
	})

	t.Run("rejects exploration rates outside (0,1)", func(t *testing.T) {
		for _, epsilon := range []float64{0, 1, -0.5, 2} {
			_, err := New(WithExplorationRate(epsilon))
			require.ErrorIs(t, err, ErrExplorationRate, "epsilon=%v", epsilon)
		}
	})

	t.Run("rejects values outside the loss-win range", func(t *testing.T) {
		_, err := New(WithDrawValue(1.5))
		require.ErrorIs(t, err, ErrValue)
		_, err = New(WithInitValue(-0.1))
		require.ErrorIs(t, err, ErrValue)
	})
}

func TestSetExplorationRate(t *testing.T) {
	a := newAgent(t)

	require.NoError(t, a.SetExplorationRate(0), "Zero freezes the policy")
	require.Equal(t, 0.0, a.ExplorationRate())
	require.ErrorIs(t, a.SetExplorationRate(1), ErrExplorationRate)
	require.ErrorIs(t, a.SetExplorationRate(-0.01), ErrExplorationRate)
	require.Equal(t, 0.0, a.ExplorationRate(), "Rejected rates should not be applied")
}

func TestLookup(t *testing.T) {
	t.Run("presets immediate wins", func(t *testing.T) {
		// x x .
		// o o .
		// . . .
		board := boardFrom(t, 0, 3, 1, 4)
		a := newAgent(t, WithExplorationRate(greedy))
		a.NewGame(game.Cross)

		result, finished, err := a.Move(board)
		require.NoError(t, err)
		require.Equal(t, game.CrossWin, result)
		require.True(t, finished)

		vals, ok := a.Values(boardFrom(t, 0, 3, 1, 4).Hash())
		require.True(t, ok, "State should be initialized before it is read")
		require.Equal(t, 1.0, vals[2], "Completing the top row is a win")
		require.Equal(t, 0.6, vals[5], "Other moves take the initial value")
		require.Equal(t, 0.6, vals[8])
	})

	t.Run("presets board-filling moves and skips illegal maxima", func(t *testing.T) {
		// x o x
		// x o o
		// o x .
		positions := []int{0, 1, 2, 4, 3, 5, 7, 6}
		board := boardFrom(t, positions...)
		a := newAgent(t, WithExplorationRate(greedy))
		a.NewGame(game.Cross)

		result, finished, err := a.Move(board)
		require.NoError(t, err)
		require.Equal(t, game.Draw, result)
		require.True(t, finished)
		require.Equal(t, game.Cross, board.At(8))

		vals, ok := a.Values(boardFrom(t, positions...).Hash())
		require.True(t, ok)
		require.Equal(t, 0.5, vals[8], "Filling the board without a line is a draw")
		for _, p := range positions {
			require.Equal(t, unusable, vals[p], "Occupied cell %d outranked the legal move and must be marked", p)
		}
	})

	t.Run("exploration still initializes the state", func(t *testing.T) {
		a := newAgent(t, WithExplorationRate(0.999999))
		a.NewGame(game.Cross)
		board := game.NewBoard()

		_, _, err := a.Move(board)
		require.NoError(t, err)
		_, ok := a.Values(game.NewBoard().Hash())
		require.True(t, ok)
		require.Equal(t, 1, a.States())
	})
}

func TestBackup(t *testing.T) {
	// Plays the agent's first move, a fixed opponent reply, then the agent's
	// second move with the reply state's values pre-seeded at 0.9.
	run := func(t *testing.T, epsilon float64) (*Agent, Step) {
		a := newAgent(t, WithLearningRate(0.5), WithExplorationRate(epsilon))
		a.NewGame(game.Cross)
		board := game.NewBoard()

		_, _, err := a.Move(board)
		require.NoError(t, err)
		first := a.Trajectory()[0]
		require.Equal(t, 0.6, a.values[first.Hash][first.Move])

		reply := board.LegalMoves()[0]
		_, _, err = board.Move(reply, game.Naught)
		require.NoError(t, err)
		seeded := &Values{}
		for i := range seeded {
			seeded[i] = 0.9
		}
		a.values[board.Hash()] = seeded

		_, _, err = a.Move(board)
		require.NoError(t, err)
		require.Len(t, a.Trajectory(), 2)
		return a, first
	}

	t.Run("greedy move pulls the previous value toward the current", func(t *testing.T) {
		a, first := run(t, greedy)
		require.InDelta(t, 0.6+0.5*(0.9-0.6), a.values[first.Hash][first.Move], 1e-12)
	})

	t.Run("exploratory move leaves the previous value alone", func(t *testing.T) {
		a, first := run(t, 0.999999)
		require.Equal(t, 0.6, a.values[first.Hash][first.Move])
	})

	t.Run("first move has nothing to back up", func(t *testing.T) {
		a := newAgent(t, WithExplorationRate(greedy))
		a.NewGame(game.Naught)
		board := boardFrom(t, 4)

		_, _, err := a.Move(board)
		require.NoError(t, err)
		vals, _ := a.Values(boardFrom(t, 4).Hash())
		for p, v := range vals {
			if p == 4 {
				continue // May have been marked unusable
			}
			require.Equal(t, 0.6, v, "Position %d should keep its initial value", p)
		}
	})
}

func TestFinalResult(t *testing.T) {
	lastValue := func(a *Agent) float64 {
		traj := a.Trajectory()
		last := traj[len(traj)-1]
		return a.values[last.Hash][last.Move]
	}

	t.Run("win leaves the last value unchanged", func(t *testing.T) {
		a := newAgent(t, WithExplorationRate(greedy))
		a.NewGame(game.Cross)
		_, _, err := a.Move(boardFrom(t, 0, 3, 1, 4))
		require.NoError(t, err)

		require.NoError(t, a.FinalResult(game.CrossWin))
		require.Equal(t, 1.0, lastValue(a))
	})

	t.Run("loss forces the loss value", func(t *testing.T) {
		a := newAgent(t, WithExplorationRate(greedy))
		a.NewGame(game.Naught)
		_, _, err := a.Move(boardFrom(t, 4))
		require.NoError(t, err)

		require.NoError(t, a.FinalResult(game.CrossWin))
		require.Equal(t, 0.0, lastValue(a))
	})

	t.Run("draw forces the draw value", func(t *testing.T) {
		a := newAgent(t, WithExplorationRate(greedy), WithDrawValue(0.4))
		a.NewGame(game.Cross)
		_, _, err := a.Move(game.NewBoard())
		require.NoError(t, err)

		require.NoError(t, a.FinalResult(game.Draw))
		require.Equal(t, 0.4, lastValue(a))
	})

	t.Run("rejects an unfinished result", func(t *testing.T) {
		a := newAgent(t)
		a.NewGame(game.Cross)
		require.ErrorIs(t, a.FinalResult(game.NotFinished), ErrUnexpectedResult)
		require.ErrorIs(t, a.FinalResult(game.GameResult(42)), ErrUnexpectedResult)
	})

	t.Run("new game clears the trajectory but keeps the table", func(t *testing.T) {
		a := newAgent(t)
		a.NewGame(game.Cross)
		_, _, err := a.Move(game.NewBoard())
		require.NoError(t, err)

		a.NewGame(game.Naught)
		require.Empty(t, a.Trajectory())
		require.Equal(t, 1, a.States())
	})
}

// playGames runs games between the agent as cross and a random opponent and
// returns the number of agent wins.
func playGames(t *testing.T, a *Agent, opponent player.Player, games int) int {
	t.Helper()
	wins := 0
	for i := 0; i < games; i++ {
		board := game.NewBoard()
		a.NewGame(game.Cross)
		opponent.NewGame(game.Naught)
		players := []player.Player{a, opponent}

		var result game.GameResult
		for turn := 0; ; turn++ {
			var finished bool
			var err error
			result, finished, err = players[turn%2].Move(board)
			require.NoError(t, err)
			if finished {
				break
			}
		}

		// Every state the agent read must have been initialized first.
		for _, step := range a.Trajectory() {
			_, ok := a.Values(step.Hash)
			require.True(t, ok)
		}

		require.NoError(t, a.FinalResult(result))
		require.NoError(t, opponent.FinalResult(result))
		if result == game.CrossWin {
			wins++
		}
	}
	return wins
}

func TestLearningAgainstRandom(t *testing.T) {
	a := newAgent(t, WithExplorationRate(0.05))
	opponent := player.NewRandom("random", rand.New(rand.NewSource(99)))

	before := playGames(t, a, opponent, 500)
	playGames(t, a, opponent, 4000)
	during := playGames(t, a, opponent, 500)

	require.NoError(t, a.SetExplorationRate(0))
	after := playGames(t, a, opponent, 500)

	require.Greater(t, during, before, "Training should improve the win rate")
	require.GreaterOrEqual(t, after, before, "Greedy play should keep the learned strength")
}

func TestRejectedMoveIsNotRecorded(t *testing.T) {
	a := newAgent(t, WithExplorationRate(greedy), WithLearningRate(0.5))
	a.NewGame(game.Cross)
	board := game.NewBoard()
	_, _, err := a.Move(board)
	require.NoError(t, err)
	first := a.Trajectory()[0]
	before := a.values[first.Hash][first.Move]
	seeded := &Values{}
	for i := range seeded {
		seeded[i] = 0.9
	}
	a.values[board.Hash()] = seeded

	// Naught is to move, so the board refuses another cross.
	_, _, err = a.Move(board)

	require.ErrorIs(t, err, game.ErrOutOfTurn)
	require.Len(t, a.Trajectory(), 1, "A refused move should not enter the trajectory")
	require.Equal(t, before, a.values[first.Hash][first.Move], "A refused move should not trigger a backup")
	require.Equal(t, game.BoardSize-1, board.NumEmpty())
}
