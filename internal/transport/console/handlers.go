package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// HumanMove - draws the board and reads a position 1-9, returned as a cell index 0-8.
func (that *Terminal) HumanMove(ctx context.Context, board entity.Board, player *entity.Player) (int, error) {
	that.showBoardScreen(board)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		that.printf("%s", that.bold(fmt.Sprintf("Player %s (%s), choose position (1-9): ",
			that.markStyle(player.Mark, player.Name), that.markStyle(player.Mark, player.Mark.String()))))

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(line)
		if err != nil {
			that.println(that.danger("Invalid input! Please enter a number."))
			continue
		}

		if position < 1 || position > entity.BoardSize {
			that.println(that.danger("Invalid position! Choose 1-9."))
			continue
		}

		return position - 1, nil
	}
}

func (that *Terminal) Rejected(player *entity.Player, cell int, err error) {
	that.logger.Debug("move rejected", "player", player.Name, "cell", cell, "error", err)

	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.notify("Position occupied! Try another spot.")
	case errors.Is(err, apperror.ErrOutOfRange):
		that.notify("Invalid position! Choose 1-9.")
	default:
		that.notify(err.Error())
	}
}

func (that *Terminal) MoveMade(event tictactoe.MoveEvent) {
	that.lastMove = fmt.Sprintf("%s (%s) took position %d", event.Player.Name, event.Mark, event.Cell+1)
	that.bell()
}

// showResult - final board and the winner line.
func (that *Terminal) showResult(game *entity.Game) {
	that.showBoardScreen(game.Board)

	result := game.Result()
	if result.Status == entity.StatusWin {
		winner := game.PlayerByMark(result.Winner)
		that.println(that.title(fmt.Sprintf("*** %s WINS! ***", winner.Name)))
	} else {
		that.println(that.title("*** IT'S A TIE! ***"))
	}

	that.bell()
	that.lastMove = ""
}
