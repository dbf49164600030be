package cmd

import (
	"tictactoe/experiments"
	"tictactoe/experiments/metrics"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Throughput(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Measure the search cost of the minimax agents",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			games, _ := cmd.Flags().GetInt("games")
			out := s.config.Experiment.OutputDir
			if cmd.Flag("out").Changed {
				out, _ = cmd.Flags().GetString("out")
			}

			records, err := experiments.Throughput(experiments.DefaultSearchConfigs, games, s.seed)
			if err != nil {
				return err
			}

			writer, err := metrics.NewWriter(out, "throughput")
			if err != nil {
				return err
			}
			if err := experiments.SaveThroughput(writer, experiments.DefaultSearchConfigs, records); err != nil {
				return err
			}
			log.Info().Msgf("stored %d move records in %s", len(records), writer.Dir())
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1, "Number of games per pairing")
	cmd.Flags().StringP("out", "o", "", "Directory for the results (default from config)")
	return cmd
}
