package cmd

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/meta"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Battle(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Play a number of games between two agents",
		Long: heredoc.Docf(`battle plays --games games between the --cross and --naught
			players on the same board and prints the tally with an elo estimate.

			Available players: %v. Learning players keep learning between games.`, playerNames),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			crossName, _ := cmd.Flags().GetString("cross")
			naughtName, _ := cmd.Flags().GetString("naught")
			games, _ := cmd.Flags().GetInt("games")
			if games <= 0 {
				return fmt.Errorf("--games must be positive, got %d", games)
			}

			f := s.factory(cmd.InOrStdin(), cmd.OutOrStdout())
			cross, err := f.player(crossName)
			if err != nil {
				return err
			}
			naught, err := f.player(naughtName)
			if err != nil {
				return err
			}

			e := engine.LocalEngine(cross, naught)
			score, err := e.Battle(games, meta.PROGRESS_INTERVAL, func(played int, score engine.Score) {
				log.Info().Msgf("%d games played: %d-%d-%d", played, score.CrossWins, score.NaughtWins, score.Draws)
			})
			if err != nil {
				return err
			}

			experiments.Report(cmd.OutOrStdout(), experiments.Run{
				Name:   "battle",
				Cross:  cross.Name(),
				Naught: naught.Name(),
				Total:  score,
			})
			return nil
		},
	}

	cmd.Flags().String("cross", "minmax", "Player moving first")
	cmd.Flags().String("naught", "random", "Player moving second")
	cmd.Flags().IntP("games", "n", 1000, "Number of games to play")
	return cmd
}
