package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Rand is the random source used by the random fallbacks. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // it's ok
}

// SelectMove - picks an empty cell for acting with the given strategy.
// The board is a copy, so the caller's board is never touched.
func SelectMove(board entity.Board, strategy entity.Strategy, acting, opponent entity.Mark, rng Rand) (int, error) {
	if !acting.IsPlayer() || !opponent.IsPlayer() || acting == opponent {
		return -1, fmt.Errorf("%w: acting %s, opponent %s", apperror.ErrInvalidMark, acting, opponent)
	}

	if board.IsFull() {
		return -1, apperror.ErrNoAvailableMove
	}

	if rng == nil {
		rng = globalRand{}
	}

	switch strategy {
	case entity.StrategyRandom:
		return randomMove(board, rng)
	case entity.StrategyOffense:
		return offenseMove(board, acting, opponent, rng)
	case entity.StrategyStrategic:
		return strategicMove(board, acting, opponent, rng)
	case entity.StrategyMinimax:
		return BestMove(board, acting, opponent)
	default:
		return -1, fmt.Errorf("%w: %s", apperror.ErrUnknownStrategy, strategy)
	}
}

type BotService interface {
	NextMove(game *entity.Game) (int, error)
}

type botService struct {
	rng Rand
}

func NewBotService(rng Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// NextMove - chooses the move of the bot seat on move. The game is not modified.
func (that *botService) NextMove(game *entity.Game) (int, error) {
	botPlayer := game.OnMove()
	if botPlayer == nil || !botPlayer.IsBot() {
		return -1, apperror.ErrNotBotSeat
	}

	cell, err := SelectMove(game.Board, game.Strategy, botPlayer.Mark, botPlayer.Mark.Opponent(), that.rng)
	if err != nil {
		return -1, fmt.Errorf("bot failed to select move: %w", err)
	}

	return cell, nil
}
