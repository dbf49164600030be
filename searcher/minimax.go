package searcher

import (
	"fmt"
	"time"

	"tictactoe/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Agent plays perfect Tic-Tac-Toe by exhaustive minimax search. The plain
// agent takes the first optimal move found; with WithRandomTies it picks
// uniformly among all optimal moves.
type Agent struct {
	name       string
	side       game.Symbol
	randomTies bool
	rng        *rand.Rand
	cache      *transpositions
	metrics    MetricsCollector
	last       MoveMetrics
}

func New(options ...Option) *Agent {
	a := &Agent{ // Default values
		name:    "MinMaxAgent",
		cache:   newTranspositions(),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.randomTies {
		if a.name == "MinMaxAgent" {
			a.name = "RndMinMaxAgent"
		}
		if a.rng == nil {
			a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		}
	}
	return a
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) NewGame(side game.Symbol) { a.side = side }

// Metrics returns the statistics of the last move when WithMetrics is set.
func (a *Agent) Metrics() MoveMetrics { return a.last }

func (a *Agent) Move(board *game.Board) (game.GameResult, bool, error) {
	a.metrics.Start()
	moves, value, err := a.BestMoves(board, a.side)
	if err != nil {
		return game.NotFinished, true, fmt.Errorf("%s: %w", a.name, err)
	}
	a.metrics.SetCandidates(len(moves))

	move := moves[0]
	if a.randomTies {
		move = moves[a.rng.Intn(len(moves))]
	}

	a.last = a.metrics.Complete()
	log.Debug().
		Str("player", a.name).
		Int("move", move).
		Float64("value", value).
		Int("candidates", len(moves)).
		Int64("nodes", a.last.Nodes).
		Int64("cache_hits", a.last.CacheHits).
		Dur("duration", a.last.Duration).
		Msg("search complete")

	return board.Move(move, a.side)
}

func (a *Agent) FinalResult(result game.GameResult) error { return result.Validate() }

// BestMoves returns every move with the optimal value for side, in ascending
// position order, together with that value.
func (a *Agent) BestMoves(board *game.Board, side game.Symbol) ([]int, float64, error) {
	if board.Result() != game.NotFinished {
		return nil, 0, ErrNoMoves
	}
	if side != board.SideToMove() {
		return nil, 0, fmt.Errorf("%w: %s", game.ErrOutOfTurn, side)
	}
	best := Loss
	var moves []int
	for _, m := range board.LegalMoves() {
		v := a.moveValue(board, m, side)
		switch {
		case len(moves) == 0 || v > best:
			best = v
			moves = []int{m}
		case v == best:
			moves = append(moves, m)
		}
	}
	if len(moves) == 0 {
		return nil, 0, ErrNoMoves
	}
	return moves, best, nil
}

// Evaluate returns the value of board for side to move, assuming perfect play
// from both sides.
func (a *Agent) Evaluate(board *game.Board, side game.Symbol) (float64, error) {
	if board.Result() != game.NotFinished {
		return 0, ErrNoMoves
	}
	if side != board.SideToMove() {
		return 0, fmt.Errorf("%w: %s", game.ErrOutOfTurn, side)
	}
	return a.value(board, side), nil
}

// value is the negamax value of a non-terminal board for side to move.
func (a *Agent) value(board *game.Board, side game.Symbol) float64 {
	a.metrics.AddNode()
	hash := board.Hash()
	if a.cache != nil {
		if v, ok := a.cache.get(hash, side); ok {
			a.metrics.AddCacheHit()
			return v
		}
	}

	best := Loss
	for _, m := range board.LegalMoves() {
		if v := a.moveValue(board, m, side); v > best {
			best = v
			if best == Win { // Cannot do better
				break
			}
		}
	}

	if a.cache != nil {
		a.cache.put(hash, side, best)
	}
	return best
}

// moveValue plays m for side on a clone of board and scores the result from
// side's perspective.
func (a *Agent) moveValue(board *game.Board, m int, side game.Symbol) float64 {
	next := board.Clone()
	result, finished, err := next.Move(m, side)
	if err != nil {
		panic(fmt.Sprintf("search played an illegal move %d: %v", m, err))
	}
	if finished {
		if result == game.Draw {
			return Draw
		}
		return Win // Only the side that just moved can complete a line
	}
	return -a.value(next, side.Opponent())
}
