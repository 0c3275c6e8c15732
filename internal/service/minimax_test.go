package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestBestMove(t *testing.T) {
	testCases := []struct {
		name     string
		board    string
		acting   entity.Mark
		expected int
	}{
		{name: "Takes the immediate win", board: "XX./OO./...", acting: entity.PlayerX, expected: 2},
		{name: "Blocks the only losing line", board: "OO./X../...", acting: entity.PlayerX, expected: 2},
		{name: "Ties on every opening so picks the lowest cell", board: ".../.../...", acting: entity.PlayerX, expected: 0},
		{name: "Answers a corner opening with the center", board: "X../.../...", acting: entity.PlayerO, expected: 4},
		{name: "Plays the last empty cell", board: "XOX/XOO/OX.", acting: entity.PlayerX, expected: 8},
		// 2 and 5 both force a win, the lower index is kept.
		{name: "Does not prefer the faster win", board: "XX./OO./..X", acting: entity.PlayerO, expected: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board
			board := mustParse(t, tc.board)
			before := board

			// When: minimax picks a move
			cell, err := BestMove(board, tc.acting, tc.acting.Opponent())

			// Then: the expected cell is chosen and the board is unchanged
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cell)
			assert.Equal(t, before, board)
		})
	}

	t.Run("Full board has no available move", func(t *testing.T) {
		// Given: a full board
		board := mustParse(t, "XOX/XOO/OXX")

		// When: minimax is asked for a move
		cell, err := BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: ErrNoAvailableMove is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMove)
		assert.Equal(t, -1, cell)
	})
}

func TestMinimax_Score(t *testing.T) {
	testCases := []struct {
		name       string
		board      string
		maximizing bool
		expected   int
	}{
		{name: "Acting mark has won", board: "XXX/OO./...", maximizing: false, expected: scoreWin},
		{name: "Opponent has won", board: "OOO/XX./X..", maximizing: true, expected: scoreLoss},
		{name: "Tie", board: "XOX/XOO/OXX", maximizing: true, expected: scoreTie},
		{name: "Acting mark to move can win", board: "X.X/.O./O..", maximizing: true, expected: scoreWin},
		{name: "Opponent to move takes its win", board: "XX./OO./...", maximizing: false, expected: scoreLoss},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board := mustParse(t, tc.board)
			before := board

			score := minimax(&board, tc.maximizing, entity.PlayerX, entity.PlayerO)

			assert.Equal(t, tc.expected, score)
			assert.Equal(t, before, board)
		})
	}
}

func TestMinimax_AgainstItselfAlwaysTies(t *testing.T) {
	// Given: an empty board and both seats on minimax
	board := entity.NewBoard()
	turn := entity.PlayerX

	// When: playing until the game ends
	for !entity.Evaluate(board).IsTerminal() {
		cell, err := SelectMove(board, entity.StrategyMinimax, turn, turn.Opponent(), nil)
		require.NoError(t, err)
		require.NoError(t, board.Place(cell, turn))

		turn = turn.Opponent()
	}

	// Then: the game is a tie
	assert.Equal(t, entity.Tie, entity.Evaluate(board))
}

// playEveryLine - minimax plays botMark, the opponent tries every legal move.
// It returns how many finished games were checked.
func playEveryLine(t *testing.T, board entity.Board, turn, botMark entity.Mark) int {
	t.Helper()

	result := entity.Evaluate(board)
	if result.IsTerminal() {
		require.False(t, result.IsWinFor(botMark.Opponent()), "minimax lost on\n%s", board)
		return 1
	}

	if turn == botMark {
		cell, err := BestMove(board, botMark, botMark.Opponent())
		require.NoError(t, err)
		require.NoError(t, board.Place(cell, botMark))

		return playEveryLine(t, board, turn.Opponent(), botMark)
	}

	games := 0
	for _, cell := range board.EmptyCells() {
		next := board
		require.NoError(t, next.Place(cell, turn))
		games += playEveryLine(t, next, turn.Opponent(), botMark)
	}

	return games
}

func TestMinimax_NeverLoses(t *testing.T) {
	t.Run("As the second mover", func(t *testing.T) {
		games := playEveryLine(t, entity.NewBoard(), entity.PlayerX, entity.PlayerO)

		assert.Positive(t, games)
	})

	t.Run("As the first mover", func(t *testing.T) {
		games := playEveryLine(t, entity.NewBoard(), entity.PlayerX, entity.PlayerX)

		assert.Positive(t, games)
	})
}

func TestMinimax_NeverLosesToOtherTiers(t *testing.T) {
	for _, strategy := range []entity.Strategy{entity.StrategyRandom, entity.StrategyOffense, entity.StrategyStrategic} {
		t.Run(strategy.String(), func(t *testing.T) {
			rng := newRand()

			for game := range 10 {
				// Given: minimax on one seat, alternating X and O between games
				botMark := entity.PlayerX
				if game%2 == 1 {
					botMark = entity.PlayerO
				}

				board := entity.NewBoard()
				turn := entity.PlayerX

				// When: the two tiers play a full game
				for !entity.Evaluate(board).IsTerminal() {
					tier := strategy
					if turn == botMark {
						tier = entity.StrategyMinimax
					}

					cell, err := SelectMove(board, tier, turn, turn.Opponent(), rng)
					require.NoError(t, err)
					require.NoError(t, board.Place(cell, turn))

					turn = turn.Opponent()
				}

				// Then: minimax never loses
				assert.False(t, entity.Evaluate(board).IsWinFor(botMark.Opponent()), "game %d\n%s", game, board)
			}
		})
	}
}
