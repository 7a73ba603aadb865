package communication

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// State is the position handed to the searcher: the player to find a move
// for, and the board.
type State struct {
	Player   game.Color
	Position game.Position
}

// ReadState parses the player followed by the 8x8 grid of cell values, all
// whitespace separated. Every invalid value is reported.
func ReadState(r io.Reader) (State, error) {
	in := bufio.NewReader(r)

	var player int
	if _, err := fmt.Fscan(in, &player); err != nil {
		return State{}, errors.Wrap(err, "failed to read player")
	}

	var errs error
	if player != int(game.Black) && player != int(game.White) {
		errs = multierror.Append(errs, errors.Errorf("player must be 1 or 2, got %d", player))
	}

	var grid [game.Size][game.Size]game.Color
	for i := 0; i < game.Size; i++ {
		for j := 0; j < game.Size; j++ {
			var cell int
			if _, err := fmt.Fscan(in, &cell); err != nil {
				return State{}, errors.Wrapf(err, "failed to read cell (%d, %d)", i, j)
			}
			if cell < 0 || cell > int(game.White) {
				errs = multierror.Append(errs, errors.Errorf("cell (%d, %d) must be 0, 1 or 2, got %d", i, j, cell))
				continue
			}
			grid[i][j] = game.Color(cell)
		}
	}
	if errs != nil {
		return State{}, errs
	}

	return State{
		Player:   game.Color(player),
		Position: game.NewPosition(grid),
	}, nil
}

// WriteMove writes the move as "row col" on its own line. A pass is written
// as "-1 -1".
func WriteMove(w io.Writer, move game.Move) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", move.Row, move.Col); err != nil {
		return errors.Wrap(err, "failed to write move")
	}
	return nil
}
