package learner

import (
	"fmt"
	"time"

	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Agent learns a value for every (state, move) pair it visits, choosing moves
// epsilon-greedily and backing values up one step after every greedy move.
// The value table outlives games; the trajectory covers the current game only.
type Agent struct {
	name       string
	side       game.Symbol
	values     map[game.StateHash]*Values
	trajectory []Step

	alpha   float64
	epsilon float64
	vWin    float64
	vDraw   float64
	vLoss   float64
	vInit   float64

	rng *rand.Rand
}

func New(options ...Option) (*Agent, error) {
	a := &Agent{ // Default values
		name:    "VFPlayer",
		values:  make(map[game.StateHash]*Values),
		alpha:   meta.LEARNING_RATE,
		epsilon: meta.EXPLORATION_RATE,
		vWin:    meta.WIN_VALUE,
		vDraw:   meta.DRAW_VALUE,
		vLoss:   meta.LOSS_VALUE,
		vInit:   meta.INIT_VALUE,
	}
	for _, option := range options {
		option(a)
	}

	if !(a.alpha > 0 && a.alpha < 1) {
		return nil, fmt.Errorf("%w: %v", ErrLearningRate, a.alpha)
	}
	if !(a.epsilon > 0 && a.epsilon < 1) {
		return nil, fmt.Errorf("%w: %v", ErrExplorationRate, a.epsilon)
	}
	if a.vDraw < a.vLoss || a.vDraw > a.vWin {
		return nil, fmt.Errorf("%w: draw value %v", ErrValue, a.vDraw)
	}
	if a.vInit < a.vLoss || a.vInit > a.vWin {
		return nil, fmt.Errorf("%w: initial value %v", ErrValue, a.vInit)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a, nil
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) LearningRate() float64 { return a.alpha }

func (a *Agent) ExplorationRate() float64 { return a.epsilon }

// SetExplorationRate changes epsilon between games. Zero is accepted so that a
// trained agent can be evaluated with a deterministic greedy policy.
func (a *Agent) SetExplorationRate(epsilon float64) error {
	if !(epsilon >= 0 && epsilon < 1) {
		return fmt.Errorf("%w: %v", ErrExplorationRate, epsilon)
	}
	a.epsilon = epsilon
	return nil
}

// NewGame sets the side and clears the trajectory. The value table is kept.
func (a *Agent) NewGame(side game.Symbol) {
	a.side = side
	a.trajectory = nil
}

func (a *Agent) Move(board *game.Board) (game.GameResult, bool, error) {
	if board.Result() != game.NotFinished {
		return game.NotFinished, true, fmt.Errorf("%s: %w", a.name, game.ErrGameOver)
	}

	strategy := a.chooseStrategy()
	m, err := a.selectMove(board, strategy)
	if err != nil {
		return game.NotFinished, false, fmt.Errorf("%s: %w", a.name, err)
	}
	hash := board.Hash()
	result, finished, err := board.Move(m, a.side)
	if err != nil {
		return result, finished, fmt.Errorf("%s: %w", a.name, err)
	}
	a.trajectory = append(a.trajectory, Step{Hash: hash, Move: m})
	a.backup(strategy)

	return result, finished, nil
}

// FinalResult forces the value of the agent's last move to the true outcome
// when the opponent's final move decided the game.
func (a *Agent) FinalResult(result game.GameResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	var final float64
	switch result {
	case game.CrossWin, game.NaughtWin:
		if a.side == game.Empty {
			return fmt.Errorf("%w: %s before any game", ErrUnexpectedResult, result)
		}
		if result == game.WinFor(a.side) {
			return nil // The winning move already holds the win value
		}
		final = a.vLoss
	case game.Draw:
		final = a.vDraw
	}

	if len(a.trajectory) == 0 {
		return nil
	}
	last := a.trajectory[len(a.trajectory)-1]
	a.values[last.Hash][last.Move] = final
	return nil
}

func (a *Agent) chooseStrategy() Strategy {
	if a.rng.Float64() < a.epsilon {
		return Exploration
	}
	return Exploitation
}

func (a *Agent) selectMove(board *game.Board, strategy Strategy) (int, error) {
	vals, err := a.lookup(board)
	if err != nil {
		return -1, err
	}

	if strategy == Exploration {
		m, ok := board.RandomEmptySpot(a.rng)
		if !ok {
			return -1, game.ErrGameOver
		}
		return m, nil
	}

	all := func(int) bool { return true }
	for i := 0; i < game.BoardSize; i++ {
		best := utils.ArgMaxes(vals[:], all)
		m := best[a.rng.Intn(len(best))]
		if board.IsLegal(m) {
			return m, nil
		}
		vals[m] = unusable
	}
	return -1, game.ErrGameOver
}

// lookup returns the value array of board, initializing it on first visit:
// moves that win take the win value, moves that fill the board without
// winning take the draw value, every other entry the initial value.
func (a *Agent) lookup(board *game.Board) (*Values, error) {
	hash := board.Hash()
	if vals, ok := a.values[hash]; ok {
		return vals, nil
	}

	vals := &Values{}
	for pos := range vals {
		vals[pos] = a.vInit
		if !board.IsLegal(pos) {
			continue
		}
		next := board.Clone()
		if _, _, err := next.Move(pos, a.side); err != nil {
			return nil, err
		}
		if next.CheckWin() {
			vals[pos] = a.vWin
		} else if next.NumEmpty() == 0 {
			vals[pos] = a.vDraw
		}
	}
	a.values[hash] = vals
	return vals, nil
}

// backup moves the value of the previous decision toward the value of the
// current one. Exploratory moves do not trigger it.
func (a *Agent) backup(strategy Strategy) {
	if strategy != Exploitation || len(a.trajectory) < 2 {
		return
	}
	prev := a.trajectory[len(a.trajectory)-2]
	cur := a.trajectory[len(a.trajectory)-1]

	prevValue := a.values[prev.Hash][prev.Move]
	nextValue := a.values[cur.Hash][cur.Move]
	a.values[prev.Hash][prev.Move] = prevValue + a.alpha*(nextValue-prevValue)

	log.Trace().
		Str("player", a.name).
		Uint64("state", uint64(prev.Hash)).
		Int("move", prev.Move).
		Float64("from", prevValue).
		Float64("to", a.values[prev.Hash][prev.Move]).
		Msg("backup")
}

// Values returns a copy of the estimates stored for hash.
func (a *Agent) Values(hash game.StateHash) (Values, bool) {
	vals, ok := a.values[hash]
	if !ok {
		return Values{}, false
	}
	return *vals, true
}

// States returns the number of states in the value table.
func (a *Agent) States() int {
	return len(a.values)
}

// Trajectory returns a copy of the decisions recorded in the current game.
func (a *Agent) Trajectory() []Step {
	return append([]Step(nil), a.trajectory...)
}
