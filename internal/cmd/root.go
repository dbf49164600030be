package cmd

import (
	"time"

	"tictactoe/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// settings are resolved once by the root command before any subcommand runs.
type settings struct {
	config config.Config
	seed   uint64
}

func Root() *cobra.Command {
	s := &settings{config: config.Default()}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Train and pit Tic-Tac-Toe agents against each other",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
			return s.resolve(cmd)
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default: XDG config dir)")
	root.PersistentFlags().Uint64("seed", 0, "Seed for every random source, 0 seeds from the clock")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Battle(s))
	root.AddCommand(Train(s))
	root.AddCommand(Play(s))
	root.AddCommand(Throughput(s))

	return root
}

func (s *settings) resolve(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = config.Find()
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		log.Debug().Msgf("loaded configuration from %s", path)
		s.config = cfg
	}

	s.seed = s.config.Seed
	if cmd.Flag("seed").Changed {
		s.seed, _ = cmd.Flags().GetUint64("seed")
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Msgf("using seed %d", s.seed)
	return nil
}
