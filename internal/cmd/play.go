package cmd

import (
	"fmt"
	"io"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

func Play(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against an agent",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			opponentName, _ := cmd.Flags().GetString("opponent")
			humanFirst, _ := cmd.Flags().GetBool("human-first")
			out := cmd.OutOrStdout()

			f := s.factory(cmd.InOrStdin(), out)
			human := f.humanPlayer()
			opponent, err := f.player(opponentName)
			if err != nil {
				return err
			}
			if _, ok := opponent.(*player.Human); ok {
				opponent = &boardView{opponent, out}
			}
			human.PrintInstructions()

			var e *engine.Engine
			if humanFirst {
				e = engine.LocalEngine(&boardView{human, out}, opponent)
			} else {
				e = engine.LocalEngine(opponent, &boardView{human, out})
			}
			result, _, err := e.Run()
			if err != nil {
				return err
			}

			render(out, e.Board)
			fmt.Fprintln(out, aurora.Bold(result))
			return nil
		},
	}

	cmd.Flags().String("opponent", "minmax", "Player to play against")
	cmd.Flags().Bool("human-first", false, "Move first as cross")
	return cmd
}

// boardView shows the board before every move of the wrapped player.
type boardView struct {
	player.Player
	out io.Writer
}

func (v *boardView) Move(board *game.Board) (game.GameResult, bool, error) {
	render(v.out, board)
	return v.Player.Move(board)
}

func render(w io.Writer, board *game.Board) {
	fmt.Fprintln(w)
	for row := 0; row < 3; row++ {
		if row > 0 {
			fmt.Fprintln(w, "-----------")
		}
		for col := 0; col < 3; col++ {
			position := row*3 + col
			var cell aurora.Value
			switch board.At(position) {
			case game.Cross:
				cell = aurora.Red("x")
			case game.Naught:
				cell = aurora.Blue("o")
			default:
				cell = aurora.Faint(player.Keys[position])
			}
			if col > 0 {
				fmt.Fprint(w, "|")
			}
			fmt.Fprintf(w, " %s ", cell)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
