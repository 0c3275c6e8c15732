package service

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	scoreWin  = 1
	scoreTie  = 0
	scoreLoss = -1
)

// BestMove - full depth minimax for acting. Equal scores keep the lowest index.
// Every forced win scores the same, so a win may be delayed.
func BestMove(board entity.Board, acting, opponent entity.Mark) (int, error) {
	bestMove := -1
	bestScore := math.MinInt

	for _, cell := range board.EmptyCells() {
		if err := board.Place(cell, acting); err != nil {
			return -1, err
		}

		score := minimax(&board, false, acting, opponent)
		board.Undo(cell)

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return -1, apperror.ErrNoAvailableMove
	}

	return bestMove, nil
}

// minimax - scores the position from acting's point of view.
// Placements are undone before returning, so siblings never see each other.
func minimax(board *entity.Board, maximizing bool, acting, opponent entity.Mark) int {
	switch result := entity.Evaluate(*board); {
	case result.IsWinFor(acting):
		return scoreWin
	case result.IsWinFor(opponent):
		return scoreLoss
	case result.Status == entity.StatusTie:
		return scoreTie
	}

	mark, best := opponent, math.MaxInt
	if maximizing {
		mark, best = acting, math.MinInt
	}

	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = mark
		score := minimax(board, !maximizing, acting, opponent)
		board.Undo(cell)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
