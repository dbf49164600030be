package main

import (
	"os"

	"tictactoe/internal/cmd"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := tictactoe(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func tictactoe() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
