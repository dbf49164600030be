package cmd

import (
	"fmt"
	"os"
	"time"

	"tictactoe/experiments"
	"tictactoe/experiments/metrics"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const SPIN = 14

func Train(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a value function agent and chart its progress",
		Long: heredoc.Doc(`train lets a value function agent play as cross against the
			--opponent while it explores, then freezes its policy and plays the
			same number of games again.

			The outcome of every battle is written as csv and as an html chart to
			a fresh directory under --out.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			opponentName, _ := cmd.Flags().GetString("opponent")
			cfg := experiments.Config{
				Battles:        s.config.Experiment.Battles,
				GamesPerBattle: s.config.Experiment.GamesPerBattle,
			}
			if cmd.Flag("battles").Changed {
				cfg.Battles, _ = cmd.Flags().GetInt("battles")
			}
			if cmd.Flag("games").Changed {
				cfg.GamesPerBattle, _ = cmd.Flags().GetInt("games")
			}
			out := s.config.Experiment.OutputDir
			if cmd.Flag("out").Changed {
				out, _ = cmd.Flags().GetString("out")
			}

			f := s.factory(cmd.InOrStdin(), cmd.OutOrStdout())
			agent, err := f.learner()
			if err != nil {
				return err
			}
			opponent, err := f.player(opponentName)
			if err != nil {
				return err
			}

			spin := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			cfg.Progress = func(battle int, run experiments.Run) {
				spin.Lock()
				spin.Suffix = fmt.Sprintf(" %s battle %d/%d", run.Name, battle, cfg.Battles)
				spin.Unlock()
			}
			spin.Start()
			training, greedy, err := experiments.Train(agent, opponent, cfg)
			spin.Stop()
			if err != nil {
				return err
			}

			experiments.Report(cmd.OutOrStdout(), training)
			experiments.Report(cmd.OutOrStdout(), greedy)

			writer, err := metrics.NewWriter(out, "train")
			if err != nil {
				return err
			}
			if err := experiments.Save(writer, training, greedy); err != nil {
				return err
			}
			log.Info().Msgf("results stored in %s", writer.Dir())
			return nil
		},
	}

	cmd.Flags().String("opponent", "rndminmax", "Player to train against")
	cmd.Flags().Int("battles", 0, "Number of battles per phase (default from config)")
	cmd.Flags().Int("games", 0, "Number of games per battle (default from config)")
	cmd.Flags().StringP("out", "o", "", "Directory for the results (default from config)")
	return cmd
}
