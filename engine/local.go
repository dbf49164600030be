package engine

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board   *game.Board
	Players [2]player.Player // Cross first, then naught
	metrics metrics.Collector
}

type Option func(e *Engine)

// WithCollector records every finished game in collector.
func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// LocalEngine drives games between cross and naught on a single shared board.
func LocalEngine(cross, naught player.Player, options ...Option) *Engine {
	if cross == nil || naught == nil {
		panic("need two players")
	}
	e := &Engine{
		Board:   game.NewBoard(),
		Players: [2]player.Player{cross, naught},
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one game to the end and reports the outcome to both players.
func (e *Engine) Run() (game.GameResult, metrics.GameMetric, error) {
	cross, naught := e.Players[0], e.Players[1]
	metric := metrics.GameMetric{
		Cross:     cross.Name(),
		Naught:    naught.Name(),
		StartTime: time.Now(),
	}

	cross.NewGame(game.Cross)
	naught.NewGame(game.Naught)
	e.Board.Reset()

	result := game.NotFinished
	for turn := 0; result == game.NotFinished; turn++ {
		if turn >= MaxMoves {
			return game.NotFinished, metric, fmt.Errorf("game did not finish after %d moves", turn)
		}
		p := e.Players[turn%2]
		r, finished, err := p.Move(e.Board)
		if err != nil {
			return game.NotFinished, metric, fmt.Errorf("game aborted on move %d by %s: %w", turn+1, p.Name(), err)
		}
		metric.TotalMoves++
		if finished {
			result = r
		}
	}

	for _, p := range e.Players {
		if err := p.FinalResult(result); err != nil {
			return result, metric, fmt.Errorf("reporting result to %s: %w", p.Name(), err)
		}
	}

	metric.Result = result
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	e.metrics.AddGame(metric)

	log.Trace().Msgf("%s vs %s: %s after %d moves", metric.Cross, metric.Naught, result, metric.TotalMoves)
	return result, metric, nil
}

// Progress is called during a battle with the number of games played so far.
type Progress func(played int, score Score)

// Battle plays games in a row and tallies the outcomes. progress, if not
// nil, is called every interval games.
func (e *Engine) Battle(games, interval int, progress Progress) (Score, error) {
	if games <= 0 {
		panic("must play at least one game")
	}
	var score Score
	for i := 1; i <= games; i++ {
		result, _, err := e.Run()
		if err != nil {
			return score, err
		}
		score.Add(result)
		if progress != nil && interval > 0 && i%interval == 0 {
			progress(i, score)
		}
	}

	n := float64(games)
	log.Debug().Msgf("after %d games we have draws: %d, %s wins: %d, and %s wins: %d",
		games, score.Draws, e.Players[0].Name(), score.CrossWins, e.Players[1].Name(), score.NaughtWins)
	log.Debug().Msgf("which gives percentages of draws: %.2f%%, %s wins: %.2f%%, and %s wins: %.2f%%",
		float64(score.Draws)*100/n, e.Players[0].Name(), float64(score.CrossWins)*100/n,
		e.Players[1].Name(), float64(score.NaughtWins)*100/n)
	return score, nil
}
