package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"tictactoe/game"
	"tictactoe/utils"
)

// Keys maps keyboard tokens to board positions in row-major order.
var Keys = []string{"q", "w", "e", "a", "s", "d", "z", "x", "c"}

// Human reads moves typed by a user. Unknown tokens and occupied cells are
// re-prompted.
type Human struct {
	name    string
	side    game.Symbol
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Human{name: name, scanner: scanner, out: out}
}

// Seat returns another human player reading from the same input, for games
// where both sides are typed on one terminal.
func (h *Human) Seat(name string) *Human {
	return &Human{name: name, scanner: h.scanner, out: h.out}
}

// PrintInstructions writes the key layout.
func (h *Human) PrintInstructions() {
	fmt.Fprintln(h.out, "To move press key corresponding to position chosen:")
	for row := 0; row < 3; row++ {
		if row > 0 {
			fmt.Fprintln(h.out, "-----------")
		}
		fmt.Fprintf(h.out, " %s | %s | %s \n", Keys[row*3], Keys[row*3+1], Keys[row*3+2])
	}
}

func (h *Human) Name() string { return h.name }

func (h *Human) NewGame(side game.Symbol) { h.side = side }

func (h *Human) Move(board *game.Board) (game.GameResult, bool, error) {
	for {
		fmt.Fprint(h.out, "Your move? ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.NotFinished, false, fmt.Errorf("reading move: %w", err)
			}
			return game.NotFinished, false, fmt.Errorf("reading move: %w", io.ErrUnexpectedEOF)
		}
		position := utils.FindIndex(Keys, h.scanner.Text())
		if position < 0 {
			continue
		}
		result, finished, err := board.Move(position, h.side)
		if errors.Is(err, game.ErrOccupied) {
			fmt.Fprintln(h.out, "That cell is taken.")
			continue
		}
		return result, finished, err
	}
}

func (h *Human) FinalResult(result game.GameResult) error { return result.Validate() }
