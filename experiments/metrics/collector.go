package metrics

import (
	"time"

	"tictactoe/game"
)

type AgentConfig struct {
	ID   int
	Name string
}

// GameMetric describes a single finished game.
type GameMetric struct {
	Cross      string
	Naught     string
	Result     game.GameResult
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// BattleMetric summarizes one battle of an evaluation run as outcome
// percentages.
type BattleMetric struct {
	Battle     int // 1-based battle number
	Games      int // Games played up to and including this battle
	CrossWins  float64
	NaughtWins float64
	Draws      float64
}

// Collector accumulates game metrics for a battle.
type Collector interface {
	AddGame(metric GameMetric)
	Complete(battle, gamesSoFar int) BattleMetric
}

type collector struct {
	games                        int
	crossWins, naughtWins, draws int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddGame(metric GameMetric) {
	c.games++
	switch metric.Result {
	case game.CrossWin:
		c.crossWins++
	case game.NaughtWin:
		c.naughtWins++
	case game.Draw:
		c.draws++
	}
}

// Complete returns the percentages of the games added since the last call and
// resets the counts.
func (c *collector) Complete(battle, gamesSoFar int) BattleMetric {
	metric := BattleMetric{Battle: battle, Games: gamesSoFar}
	if c.games > 0 {
		n := float64(c.games)
		metric.CrossWins = float64(c.crossWins) * 100 / n
		metric.NaughtWins = float64(c.naughtWins) * 100 / n
		metric.Draws = float64(c.draws) * 100 / n
	}
	*c = collector{}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddGame(GameMetric)               {}
func (c *dummyCollector) Complete(int, int) BattleMetric { return BattleMetric{} }

// MoveRecord is the search cost of a single move of a search agent.
type MoveRecord struct {
	Game       int
	Agent      int // AgentConfig.ID of the mover
	Step       int // 1-based ply
	Duration   time.Duration
	Nodes      int64
	CacheHits  int64
	Candidates int
}
