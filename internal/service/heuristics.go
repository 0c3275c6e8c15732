package service

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const center = 4

var (
	corners = []int{0, 2, 6, 8}
	sides   = []int{1, 3, 5, 7}

	// oppositeCorners are checked in order: opponent on the first cell, answer on the second.
	oppositeCorners = [][2]int{
		{0, 8},
		{2, 6},
		{6, 2},
		{8, 0},
	}
)

// FindWinningMove - one ply lookahead: the lowest empty cell that wins for mark, if any.
func FindWinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for _, cell := range board.EmptyCells() {
		if err := board.Place(cell, mark); err != nil {
			continue
		}

		won := entity.Evaluate(board).IsWinFor(mark)
		board.Undo(cell)

		if won {
			return cell, true
		}
	}

	return -1, false
}

func randomMove(board entity.Board, rng Rand) (int, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return -1, apperror.ErrNoAvailableMove
	}

	return cells[rng.Intn(len(cells))], nil
}

func firstEmpty(board entity.Board, cells []int) (int, bool) {
	for _, cell := range cells {
		if board.IsEmpty(cell) {
			return cell, true
		}
	}

	return -1, false
}

// winOrBlock - take an immediate win, otherwise stop the opponent's.
func winOrBlock(board entity.Board, acting, opponent entity.Mark) (int, bool) {
	if cell, ok := FindWinningMove(board, acting); ok {
		return cell, true
	}

	return FindWinningMove(board, opponent)
}

// offenseMove - win, block, center, first free corner, random.
func offenseMove(board entity.Board, acting, opponent entity.Mark, rng Rand) (int, error) {
	if cell, ok := winOrBlock(board, acting, opponent); ok {
		return cell, nil
	}

	if board.IsEmpty(center) {
		return center, nil
	}

	if cell, ok := firstEmpty(board, corners); ok {
		return cell, nil
	}

	return randomMove(board, rng)
}

// strategicMove - win, block, center, corner opposite the opponent, any corner, any side, random.
// It can still be beaten, that is what separates Hard from Impossible.
func strategicMove(board entity.Board, acting, opponent entity.Mark, rng Rand) (int, error) {
	if cell, ok := winOrBlock(board, acting, opponent); ok {
		return cell, nil
	}

	if board.IsEmpty(center) {
		return center, nil
	}

	for _, pair := range oppositeCorners {
		if board[pair[0]] == opponent && board.IsEmpty(pair[1]) {
			return pair[1], nil
		}
	}

	if cell, ok := firstEmpty(board, corners); ok {
		return cell, nil
	}

	if cell, ok := firstEmpty(board, sides); ok {
		return cell, nil
	}

	return randomMove(board, rng)
}
