package experiments

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// SearchConfig describes one search agent of the throughput experiment.
type SearchConfig struct {
	ID         int
	RandomTies bool
	Cache      bool
}

func (c SearchConfig) name() string {
	name := "minmax"
	if c.RandomTies {
		name = "rndminmax"
	}
	if !c.Cache {
		name += "-nocache"
	}
	return fmt.Sprintf("%d:%s", c.ID, name)
}

func (c SearchConfig) agent(seed uint64) *searcher.Agent {
	options := []searcher.Option{
		searcher.WithName(c.name()),
		searcher.WithMetrics(),
		searcher.WithSeed(seed),
	}
	if c.RandomTies {
		options = append(options, searcher.WithRandomTies())
	}
	if !c.Cache {
		options = append(options, searcher.WithoutCache())
	}
	return searcher.New(options...)
}

// DefaultSearchConfigs compares cached and uncached search.
var DefaultSearchConfigs = []SearchConfig{
	{ID: 1, Cache: true},
	{ID: 2, Cache: false},
	{ID: 3, RandomTies: true, Cache: true},
}

// Throughput plays games games for every pairing of configs as cross and
// naught and records the cost of every move. A fresh pair of agents is used
// per pairing so cached agents start cold.
func Throughput(configs []SearchConfig, games int, seed uint64) ([]metrics.MoveRecord, error) {
	if games <= 0 {
		return nil, fmt.Errorf("throughput needs at least one game, got %d", games)
	}

	records := []metrics.MoveRecord{}
	count := 0
	log.Info().Msg("starting throughput experiment...")
	for _, crossConfig := range configs {
		for _, naughtConfig := range configs {
			seed++
			cross := &recorder{Agent: crossConfig.agent(seed), id: crossConfig.ID, records: &records}
			naught := &recorder{Agent: naughtConfig.agent(seed + 1000), id: naughtConfig.ID, records: &records}
			e := engine.LocalEngine(cross, naught)

			log.Info().Msgf("starting matchup between %s and %s...", cross.Name(), naught.Name())
			for i := 0; i < games; i++ {
				count++
				cross.game, naught.game = count, count
				result, gameMetric, err := e.Run()
				if err != nil {
					return records, err
				}
				log.Debug().Msgf("completed game %d in %v with %s", count, gameMetric.Duration, result)
			}
		}
	}
	log.Info().Msgf("completed throughput experiment with %d games", count)

	return records, nil
}

// SaveThroughput writes the move records and the agent configs to writer.
func SaveThroughput(writer *metrics.Writer, configs []SearchConfig, records []metrics.MoveRecord) error {
	agents := []metrics.AgentConfig{}
	for _, c := range configs {
		agents = append(agents, metrics.AgentConfig{ID: c.ID, Name: c.name()})
	}
	if err := writer.WriteAgentConfigs(agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	return nil
}

// recorder appends the search metrics of every move of the wrapped agent.
type recorder struct {
	*searcher.Agent
	id      int
	game    int
	records *[]metrics.MoveRecord
}

func (r *recorder) Move(board *game.Board) (game.GameResult, bool, error) {
	step := game.BoardSize - board.NumEmpty() + 1
	result, finished, err := r.Agent.Move(board)
	if err != nil {
		return result, finished, err
	}
	m := r.Metrics()
	*r.records = append(*r.records, metrics.MoveRecord{
		Game:       r.game,
		Agent:      r.id,
		Step:       step,
		Duration:   m.Duration,
		Nodes:      m.Nodes,
		CacheHits:  m.CacheHits,
		Candidates: m.Candidates,
	})
	return result, finished, nil
}
