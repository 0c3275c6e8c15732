package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// fixedRand always picks the same position among the candidates.
type fixedRand int

func (that fixedRand) Intn(n int) int {
	return int(that) % n
}

func mustParse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42)) //nolint: gosec // deterministic tests
}

// reachablePositions - every distinct non-terminal position of legal play with the mark on move.
func reachablePositions() map[entity.Board]entity.Mark {
	positions := make(map[entity.Board]entity.Mark)

	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		if _, seen := positions[board]; seen || entity.Evaluate(board).IsTerminal() {
			return
		}
		positions[board] = turn

		for _, cell := range board.EmptyCells() {
			next := board
			_ = next.Place(cell, turn)
			walk(next, turn.Opponent())
		}
	}
	walk(entity.NewBoard(), entity.PlayerX)

	return positions
}

func TestSelectMove_AlwaysReturnsAnEmptyCell(t *testing.T) {
	positions := reachablePositions()
	require.Len(t, positions, 4520)

	for _, strategy := range entity.Strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			rng := newRand()

			for board, turn := range positions {
				before := board

				// When: the strategy picks a move
				cell, err := SelectMove(board, strategy, turn, turn.Opponent(), rng)

				// Then: it is a currently empty cell and the board was not touched
				require.NoError(t, err)
				require.True(t, board.IsEmpty(cell), "cell %d on\n%s", cell, board)
				require.Equal(t, before, board)
			}
		})
	}
}

func TestSelectMove_Errors(t *testing.T) {
	t.Run("Full board has no available move for any strategy", func(t *testing.T) {
		// Given: a tied, full board
		board := mustParse(t, "XOX/XOO/OXX")

		for _, strategy := range entity.Strategies {
			// When: asking for a move
			cell, err := SelectMove(board, strategy, entity.PlayerX, entity.PlayerO, newRand())

			// Then: ErrNoAvailableMove is returned
			require.ErrorIs(t, err, apperror.ErrNoAvailableMove, strategy.String())
			assert.Equal(t, -1, cell)
		}
	})

	t.Run("Unknown strategy", func(t *testing.T) {
		_, err := SelectMove(entity.NewBoard(), entity.Strategy(0), entity.PlayerX, entity.PlayerO, newRand())

		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
	})

	t.Run("Acting and opponent must be different player marks", func(t *testing.T) {
		_, err := SelectMove(entity.NewBoard(), entity.StrategyRandom, entity.PlayerX, entity.PlayerX, newRand())
		require.ErrorIs(t, err, apperror.ErrInvalidMark)

		_, err = SelectMove(entity.NewBoard(), entity.StrategyRandom, entity.Empty, entity.PlayerO, newRand())
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Nil random source falls back to the global one", func(t *testing.T) {
		cell, err := SelectMove(entity.NewBoard(), entity.StrategyRandom, entity.PlayerX, entity.PlayerO, nil)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, cell, 0)
		assert.Less(t, cell, entity.BoardSize)
	})
}

func TestBotService_NextMove(t *testing.T) {
	t.Run("Chooses a move for the bot on move without touching the game", func(t *testing.T) {
		// Given: a game where the bot plays O and X has taken a corner
		game := entity.NewGame(entity.NewPlayer("Alice", entity.Empty), entity.NewBotPlayer("Computer", entity.Empty), entity.StrategyStrategic)
		require.NoError(t, game.Board.Place(0, entity.PlayerX))
		game.Turn = entity.PlayerO
		before := game.Board

		bot := NewBotService(newRand())

		// When: the bot chooses its move
		cell, err := bot.NextMove(game)

		// Then: Hard takes the center and the board is unchanged
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, before, game.Board)
	})

	t.Run("Refuses when a human is on move", func(t *testing.T) {
		// Given: a new game where the human X is on move
		game := entity.NewGame(entity.NewPlayer("Alice", entity.Empty), entity.NewBotPlayer("Computer", entity.Empty), entity.StrategyMinimax)

		// When: the bot is asked to move
		_, err := NewBotService(newRand()).NextMove(game)

		// Then: ErrNotBotSeat is returned
		require.ErrorIs(t, err, apperror.ErrNotBotSeat)
	})

	t.Run("Wraps selection errors", func(t *testing.T) {
		// Given: a bot game with an unresolved strategy
		game := entity.NewGame(entity.NewBotPlayer("Computer", entity.Empty), entity.NewPlayer("Alice", entity.Empty), 0)

		// When: the bot is asked to move
		_, err := NewBotService(newRand()).NextMove(game)

		// Then: the strategy error is returned
		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
	})
}
