package experiments

import (
	"fmt"
	"io"
	"math"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"
	"tictactoe/player"

	"github.com/rs/zerolog/log"
)

// Run is the outcome of an evaluation phase between two players.
type Run struct {
	Name    string
	Cross   string
	Naught  string
	Battles []metrics.BattleMetric
	Total   engine.Score
}

type Config struct {
	Battles        int
	GamesPerBattle int
	// Progress, if set, is called after every battle.
	Progress func(battle int, run Run)
}

// Evaluate plays cfg.Battles battles of cfg.GamesPerBattle games between
// cross and naught and records the outcome percentages of every battle.
// Learning players keep learning throughout.
func Evaluate(name string, cross, naught player.Player, cfg Config) (Run, error) {
	if cfg.Battles <= 0 || cfg.GamesPerBattle <= 0 {
		return Run{}, fmt.Errorf("evaluation needs at least one battle and game, got %d x %d", cfg.Battles, cfg.GamesPerBattle)
	}

	collector := metrics.NewCollector()
	e := engine.LocalEngine(cross, naught, engine.WithCollector(collector))
	run := Run{Name: name, Cross: cross.Name(), Naught: naught.Name()}

	log.Info().Msgf("starting %s: %s vs %s, %d battles of %d games", name, run.Cross, run.Naught, cfg.Battles, cfg.GamesPerBattle)
	for i := 1; i <= cfg.Battles; i++ {
		score, err := e.Battle(cfg.GamesPerBattle, 0, nil)
		if err != nil {
			return run, fmt.Errorf("%s battle %d: %w", name, i, err)
		}
		run.Total.CrossWins += score.CrossWins
		run.Total.NaughtWins += score.NaughtWins
		run.Total.Draws += score.Draws

		battle := collector.Complete(i, i*cfg.GamesPerBattle)
		run.Battles = append(run.Battles, battle)
		log.Debug().Msgf("%s battle %d of %d: draws %.1f%%, %s %.1f%%, %s %.1f%%",
			name, i, cfg.Battles, battle.Draws, run.Cross, battle.CrossWins, run.Naught, battle.NaughtWins)
		if cfg.Progress != nil {
			cfg.Progress(i, run)
		}
	}
	log.Info().Msgf("completed %s after %d games", name, run.Total.Games())

	return run, nil
}

// Train evaluates agent against opponent while it learns with its current
// exploration rate, then freezes the policy by setting exploration to zero
// and evaluates again.
func Train(agent *learner.Agent, opponent player.Player, cfg Config) (training Run, greedy Run, err error) {
	training, err = Evaluate("training", agent, opponent, cfg)
	if err != nil {
		return training, greedy, err
	}
	log.Info().Msgf("%s learned values for %d states", agent.Name(), agent.States())

	if err = agent.SetExplorationRate(0); err != nil {
		return training, greedy, err
	}
	greedy, err = Evaluate("greedy", agent, opponent, cfg)
	return training, greedy, err
}

// Save writes the battle records and a chart of every run to writer.
func Save(writer *metrics.Writer, runs ...Run) error {
	configs := []metrics.AgentConfig{}
	for i, run := range runs {
		if i == 0 {
			configs = append(configs,
				metrics.AgentConfig{ID: 1, Name: run.Cross},
				metrics.AgentConfig{ID: 2, Name: run.Naught})
		}
		if err := writer.WriteBattleRecords(run.Name, run.Battles); err != nil {
			return fmt.Errorf("failed to store %s battles: %w", run.Name, err)
		}
		path, err := writer.WriteChart(run.Name, run.Cross, run.Naught, run.Battles)
		if err != nil {
			return fmt.Errorf("failed to store %s chart: %w", run.Name, err)
		}
		log.Info().Msgf("stored %s chart at %s", run.Name, path)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	return nil
}

// Report prints the totals of run with the elo estimate of both players.
func Report(w io.Writer, run Run) {
	s := run.Total
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	rows := []struct {
		name         string
		wins, losses int
	}{
		{run.Cross, s.CrossWins, s.NaughtWins},
		{run.Naught, s.NaughtWins, s.CrossWins},
	}
	for i, row := range rows {
		lower, elo, upper := Elo(row.wins, s.Draws, row.losses)
		fmt.Fprintf(w, "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
			i+1, row.name,
			elo, math.Abs(math.Max(upper-elo, elo-lower)),
			row.wins, row.losses, s.Draws, s.Games())
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}
